package pricing_test

import (
	"testing"

	"techflow-web-backend/internal/domain"
	"techflow-web-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landing(pages int, timeline domain.Timeline) domain.CalculatorAnswers {
	return domain.CalculatorAnswers{
		ProjectType: domain.ProjectLanding,
		Pages:       pages,
		Design:      domain.DesignCustom,
		Timeline:    timeline,
	}
}

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		answers domain.CalculatorAnswers
		want    domain.Estimate
	}{
		{
			name:    "Landing with defaults",
			answers: landing(3, domain.TimelineNormal),
			want:    domain.Estimate{Min: 2000000, Max: 4000000, TimeMin: 2, TimeMax: 3},
		},
		{
			name:    "Urgent landing costs more and takes less",
			answers: landing(3, domain.TimelineUrgent),
			want:    domain.Estimate{Min: 3200000, Max: 6400000, TimeMin: 1, TimeMax: 1},
		},
		{
			name: "Features, premium design and fast timeline compose",
			answers: domain.CalculatorAnswers{
				ProjectType: domain.ProjectLanding,
				Pages:       8,
				Features:    []domain.Feature{domain.FeaturePayments, domain.FeatureSEO},
				Design:      domain.DesignPremium,
				Timeline:    domain.TimelineFast,
			},
			want: domain.Estimate{Min: 9828000, Max: 17108000, TimeMin: 3, TimeMax: 4},
		},
		{
			name: "Half weeks round away from zero",
			answers: domain.CalculatorAnswers{
				ProjectType: domain.ProjectPortfolio,
				Pages:       1,
				Design:      domain.DesignCustom,
				Timeline:    domain.TimelineNormal,
			},
			want: domain.Estimate{Min: 3500000, Max: 7000000, TimeMin: 4, TimeMax: 5},
		},
		{
			name: "Largest bracket with template design",
			answers: domain.CalculatorAnswers{
				ProjectType: domain.ProjectWebApp,
				Pages:       120,
				Design:      domain.DesignTemplate,
				Timeline:    domain.TimelineNormal,
			},
			want: domain.Estimate{Min: 31500000, Max: 105000000, TimeMin: 12, TimeMax: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Calculate(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_DuplicateFeaturesCountOnce(t *testing.T) {
	once := landing(3, domain.TimelineNormal)
	once.Features = []domain.Feature{domain.FeatureChat}

	twice := landing(3, domain.TimelineNormal)
	twice.Features = []domain.Feature{domain.FeatureChat, domain.FeatureChat}

	a, err := pricing.Calculate(once)
	require.NoError(t, err)
	b, err := pricing.Calculate(twice)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculate_Rejections(t *testing.T) {
	t.Run("Unknown project type computes nothing", func(t *testing.T) {
		answers := landing(3, domain.TimelineNormal)
		answers.ProjectType = "nonexistent"

		got, err := pricing.Calculate(answers)
		assert.ErrorIs(t, err, pricing.ErrInvalidProjectType)
		assert.Equal(t, domain.Estimate{}, got)
	})

	t.Run("Unknown feature is rejected", func(t *testing.T) {
		answers := landing(3, domain.TimelineNormal)
		answers.Features = []domain.Feature{domain.FeatureChat, "teleport"}

		_, err := pricing.Calculate(answers)
		assert.ErrorIs(t, err, pricing.ErrUnknownFeature)
	})

	t.Run("Zero pages", func(t *testing.T) {
		_, err := pricing.Calculate(landing(0, domain.TimelineNormal))
		assert.ErrorIs(t, err, pricing.ErrInvalidPageCount)
	})

	t.Run("Unknown design and timeline", func(t *testing.T) {
		answers := landing(3, domain.TimelineNormal)
		answers.Design = "brutalist"
		_, err := pricing.Calculate(answers)
		assert.ErrorIs(t, err, pricing.ErrInvalidDesignTier)

		_, err = pricing.Calculate(landing(3, "yesterday"))
		assert.ErrorIs(t, err, pricing.ErrInvalidTimeline)
	})
}

func TestCalculate_Properties(t *testing.T) {
	pageCounts := []int{1, 5, 6, 10, 11, 20, 21, 50, 51, 100}

	for _, pt := range domain.ProjectTypes {
		for _, design := range domain.DesignTiers {
			for _, timeline := range domain.Timelines {
				var prev domain.Estimate
				for i, pages := range pageCounts {
					answers := domain.CalculatorAnswers{
						ProjectType: pt,
						Pages:       pages,
						Features:    domain.Features[:i],
						Design:      design,
						Timeline:    timeline,
					}
					got, err := pricing.Calculate(answers)
					require.NoError(t, err)

					assert.GreaterOrEqual(t, got.Max, got.Min, "price bounds for %+v", answers)
					assert.GreaterOrEqual(t, got.TimeMax, got.TimeMin, "time bounds for %+v", answers)

					again, err := pricing.Calculate(answers)
					require.NoError(t, err)
					assert.Equal(t, got, again)

					if i > 0 {
						assert.GreaterOrEqual(t, got.Min, prev.Min, "min must not drop at %d pages", pages)
						assert.GreaterOrEqual(t, got.Max, prev.Max, "max must not drop at %d pages", pages)
					}
					prev = got
				}
			}
		}
	}
}

func TestCalculate_PageBracketsOnlyRaisePrice(t *testing.T) {
	for _, pt := range domain.ProjectTypes {
		var prev domain.Estimate
		for pages := 1; pages <= 80; pages++ {
			answers := domain.CalculatorAnswers{ProjectType: pt, Pages: pages, Design: domain.DesignCustom, Timeline: domain.TimelineNormal}
			got, err := pricing.Calculate(answers)
			require.NoError(t, err)
			if pages > 1 {
				assert.GreaterOrEqual(t, got.Min, prev.Min)
				assert.GreaterOrEqual(t, got.Max, prev.Max)
			}
			prev = got
		}
	}
}

func TestTable_PageMultiplier(t *testing.T) {
	table := pricing.DefaultTable()
	cases := map[int]float64{1: 1, 5: 1, 6: 1.3, 10: 1.3, 11: 1.6, 20: 1.6, 21: 2.2, 50: 2.2, 51: 3, 500: 3}
	for pages, want := range cases {
		assert.Equal(t, want, table.PageMultiplier(pages), "pages=%d", pages)
	}
}

func TestTable_Catalog(t *testing.T) {
	c := pricing.DefaultTable().Catalog()

	assert.Equal(t, "COP", c.Currency)
	require.Len(t, c.ProjectTypes, 6)
	assert.Equal(t, "Landing Page", c.ProjectTypes[0].Label)
	assert.Equal(t, int64(2000000), c.ProjectTypes[0].MinPrice)
	assert.Len(t, c.Features, 12)
	assert.Len(t, c.PageBrackets, 5)
	require.Len(t, c.Timelines, 3)
	assert.Equal(t, 0.5, c.Timelines[2].TimeFactor)
}
