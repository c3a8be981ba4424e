package pricing

import "techflow-web-backend/internal/domain"

// BasePrice is the starting range for a project type, in whole COP.
type BasePrice struct {
	Min   float64
	Max   float64
	Weeks float64
}

// PageBracket applies to page counts up to and including MaxPages.
// The last bracket has MaxPages == 0 and catches everything above.
type PageBracket struct {
	Label      string
	MaxPages   int
	Multiplier float64
}

type FeaturePrice struct {
	Price float64
	Weeks float64
}

type TimelineFactor struct {
	Price float64
	Time  float64
}

// Table holds every number the calculator uses.
type Table struct {
	Base      map[domain.ProjectType]BasePrice
	Pages     []PageBracket
	Features  map[domain.Feature]FeaturePrice
	Designs   map[domain.DesignTier]float64
	Timelines map[domain.Timeline]TimelineFactor
	// Feature prices are spread into [FeatureMinBand, FeatureMaxBand] x price.
	FeatureMinBand float64
	FeatureMaxBand float64
	// TimeBand widens the minimum delivery time into the maximum.
	TimeBand float64
}

// DefaultTable returns the published TechFlow price list.
func DefaultTable() *Table {
	return &Table{
		Base: map[domain.ProjectType]BasePrice{
			domain.ProjectLanding:   {Min: 2000000, Max: 4000000, Weeks: 2},
			domain.ProjectCorporate: {Min: 4000000, Max: 8000000, Weeks: 4},
			domain.ProjectEcommerce: {Min: 8000000, Max: 15000000, Weeks: 6},
			domain.ProjectWebApp:    {Min: 15000000, Max: 50000000, Weeks: 12},
			domain.ProjectBlog:      {Min: 3000000, Max: 6000000, Weeks: 3},
			domain.ProjectPortfolio: {Min: 3500000, Max: 7000000, Weeks: 3.5},
		},
		Pages: []PageBracket{
			{Label: "1-5", MaxPages: 5, Multiplier: 1},
			{Label: "6-10", MaxPages: 10, Multiplier: 1.3},
			{Label: "11-20", MaxPages: 20, Multiplier: 1.6},
			{Label: "21-50", MaxPages: 50, Multiplier: 2.2},
			{Label: "50+", Multiplier: 3},
		},
		Features: map[domain.Feature]FeaturePrice{
			domain.FeaturePayments:      {Price: 2000000, Weeks: 1},
			domain.FeatureMultilanguage: {Price: 1500000, Weeks: 1},
			domain.FeatureChat:          {Price: 1000000, Weeks: 0.5},
			domain.FeatureBooking:       {Price: 2500000, Weeks: 1.5},
			domain.FeatureCRM:           {Price: 3000000, Weeks: 2},
			domain.FeatureAnalytics:     {Price: 500000, Weeks: 0.25},
			domain.FeatureSEO:           {Price: 1500000, Weeks: 0.5},
			domain.FeatureAnimations:    {Price: 1000000, Weeks: 0.5},
			domain.FeatureAPI:           {Price: 3000000, Weeks: 2},
			domain.FeatureAdmin:         {Price: 2000000, Weeks: 1},
			domain.FeatureNotifications: {Price: 800000, Weeks: 0.5},
			domain.FeatureSocial:        {Price: 1200000, Weeks: 0.75},
		},
		Designs: map[domain.DesignTier]float64{
			domain.DesignTemplate: 0.7,
			domain.DesignCustom:   1,
			domain.DesignPremium:  1.4,
		},
		Timelines: map[domain.Timeline]TimelineFactor{
			domain.TimelineNormal: {Price: 1, Time: 1},
			domain.TimelineFast:   {Price: 1.3, Time: 0.75},
			domain.TimelineUrgent: {Price: 1.6, Time: 0.5},
		},
		FeatureMinBand: 0.8,
		FeatureMaxBand: 1.2,
		TimeBand:       1.3,
	}
}

// PageMultiplier maps a page count onto its bracket.
func (t *Table) PageMultiplier(pages int) float64 {
	for _, b := range t.Pages {
		if b.MaxPages == 0 || pages <= b.MaxPages {
			return b.Multiplier
		}
	}
	return t.Pages[len(t.Pages)-1].Multiplier
}

// Catalog renders the table for the wizard, in display order.
func (t *Table) Catalog() *domain.CalculatorCatalog {
	c := &domain.CalculatorCatalog{Currency: "COP"}
	for _, p := range domain.ProjectTypes {
		b := t.Base[p]
		c.ProjectTypes = append(c.ProjectTypes, domain.ProjectTypeOption{
			ID: p, Label: p.Label(), MinPrice: int64(b.Min), MaxPrice: int64(b.Max), Weeks: b.Weeks,
		})
	}
	for _, b := range t.Pages {
		c.PageBrackets = append(c.PageBrackets, domain.PageBracketOption{
			Label: b.Label, MaxPages: b.MaxPages, Multiplier: b.Multiplier,
		})
	}
	for _, f := range domain.Features {
		fp := t.Features[f]
		c.Features = append(c.Features, domain.FeatureOption{
			ID: f, Label: f.Label(), Price: int64(fp.Price), Weeks: fp.Weeks,
		})
	}
	for _, d := range domain.DesignTiers {
		c.Designs = append(c.Designs, domain.MultiplierOption{
			ID: string(d), Label: d.Label(), Multiplier: t.Designs[d],
		})
	}
	for _, tl := range domain.Timelines {
		f := t.Timelines[tl]
		c.Timelines = append(c.Timelines, domain.MultiplierOption{
			ID: string(tl), Label: tl.Label(), Multiplier: f.Price, TimeFactor: f.Time,
		})
	}
	return c
}
