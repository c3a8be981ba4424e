package pricing

import (
	"errors"
	"fmt"
	"math"

	"techflow-web-backend/internal/domain"
)

var (
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidPageCount   = errors.New("page count must be at least 1")
	ErrInvalidDesignTier  = errors.New("invalid design tier")
	ErrInvalidTimeline    = errors.New("invalid timeline")
	ErrUnknownFeature     = domain.ErrUnknownFeature
)

var defaultTable = DefaultTable()

// Calculate prices answers against the default table.
func Calculate(answers domain.CalculatorAnswers) (domain.Estimate, error) {
	return defaultTable.Calculate(answers)
}

// Calculate turns a questionnaire into a price and delivery range.
// Every input is checked before any arithmetic; nothing falls back to a default price.
func (t *Table) Calculate(answers domain.CalculatorAnswers) (domain.Estimate, error) {
	base, ok := t.Base[answers.ProjectType]
	if !ok {
		return domain.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidProjectType, answers.ProjectType)
	}
	if answers.Pages < 1 {
		return domain.Estimate{}, fmt.Errorf("%w: got %d", ErrInvalidPageCount, answers.Pages)
	}
	design, ok := t.Designs[answers.Design]
	if !ok {
		return domain.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidDesignTier, answers.Design)
	}
	timeline, ok := t.Timelines[answers.Timeline]
	if !ok {
		return domain.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidTimeline, answers.Timeline)
	}
	features, err := domain.NormalizeFeatures(answers.Features)
	if err != nil {
		return domain.Estimate{}, err
	}

	pageMult := t.PageMultiplier(answers.Pages)
	priceMin := base.Min * pageMult
	priceMax := base.Max * pageMult
	weeks := base.Weeks

	for _, f := range features {
		fp := t.Features[f]
		priceMin += fp.Price * t.FeatureMinBand
		priceMax += fp.Price * t.FeatureMaxBand
		weeks += fp.Weeks
	}

	priceMin = priceMin * design * timeline.Price
	priceMax = priceMax * design * timeline.Price
	weeks *= timeline.Time

	timeMin := int(math.Round(weeks))
	return domain.Estimate{
		Min:     int64(math.Round(priceMin)),
		Max:     int64(math.Round(priceMax)),
		TimeMin: timeMin,
		TimeMax: int(math.Round(float64(timeMin) * t.TimeBand)),
	}, nil
}
