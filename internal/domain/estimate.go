package domain

import (
	"errors"
	"fmt"
)

// ProjectType identifies the kind of site being quoted.
type ProjectType string

const (
	ProjectLanding   ProjectType = "landing"
	ProjectCorporate ProjectType = "corporate"
	ProjectEcommerce ProjectType = "ecommerce"
	ProjectWebApp    ProjectType = "webapp"
	ProjectBlog      ProjectType = "blog"
	ProjectPortfolio ProjectType = "portfolio"
)

// ProjectTypes lists project types in the order the wizard shows them.
var ProjectTypes = []ProjectType{
	ProjectLanding, ProjectCorporate, ProjectEcommerce, ProjectWebApp, ProjectBlog, ProjectPortfolio,
}

var projectTypeLabels = map[ProjectType]string{
	ProjectLanding:   "Landing Page",
	ProjectCorporate: "Sitio Corporativo",
	ProjectEcommerce: "E-commerce",
	ProjectWebApp:    "Aplicación Web",
	ProjectBlog:      "Blog/Revista",
	ProjectPortfolio: "Portfolio",
}

func (p ProjectType) Label() string {
	if l, ok := projectTypeLabels[p]; ok {
		return l
	}
	return string(p)
}

// Feature is one add-on from the closed feature catalog.
type Feature string

const (
	FeaturePayments      Feature = "payments"
	FeatureMultilanguage Feature = "multilanguage"
	FeatureChat          Feature = "chat"
	FeatureBooking       Feature = "booking"
	FeatureCRM           Feature = "crm"
	FeatureAnalytics     Feature = "analytics"
	FeatureSEO           Feature = "seo"
	FeatureAnimations    Feature = "animations"
	FeatureAPI           Feature = "api"
	FeatureAdmin         Feature = "admin"
	FeatureNotifications Feature = "notifications"
	FeatureSocial        Feature = "social"
)

var Features = []Feature{
	FeaturePayments, FeatureMultilanguage, FeatureChat, FeatureBooking,
	FeatureCRM, FeatureAnalytics, FeatureSEO, FeatureAnimations,
	FeatureAPI, FeatureAdmin, FeatureNotifications, FeatureSocial,
}

var featureLabels = map[Feature]string{
	FeaturePayments:      "Pagos Online",
	FeatureMultilanguage: "Multi-idioma",
	FeatureChat:          "Chat en Vivo",
	FeatureBooking:       "Sistema de Reservas",
	FeatureCRM:           "Integración CRM",
	FeatureAnalytics:     "Analytics Avanzado",
	FeatureSEO:           "SEO Avanzado",
	FeatureAnimations:    "Animaciones Premium",
	FeatureAPI:           "API Personalizada",
	FeatureAdmin:         "Panel Admin",
	FeatureNotifications: "Notificaciones",
	FeatureSocial:        "Login Social",
}

func (f Feature) Valid() bool {
	_, ok := featureLabels[f]
	return ok
}

func (f Feature) Label() string {
	if l, ok := featureLabels[f]; ok {
		return l
	}
	return string(f)
}

// DesignTier is the visual design level.
type DesignTier string

const (
	DesignTemplate DesignTier = "template"
	DesignCustom   DesignTier = "custom"
	DesignPremium  DesignTier = "premium"
)

var DesignTiers = []DesignTier{DesignTemplate, DesignCustom, DesignPremium}

var designLabels = map[DesignTier]string{
	DesignTemplate: "Plantilla",
	DesignCustom:   "Personalizado",
	DesignPremium:  "Premium",
}

func (d DesignTier) Label() string {
	if l, ok := designLabels[d]; ok {
		return l
	}
	return string(d)
}

// Timeline is the requested delivery urgency.
type Timeline string

const (
	TimelineNormal Timeline = "normal"
	TimelineFast   Timeline = "fast"
	TimelineUrgent Timeline = "urgent"
)

var Timelines = []Timeline{TimelineNormal, TimelineFast, TimelineUrgent}

var timelineLabels = map[Timeline]string{
	TimelineNormal: "Normal",
	TimelineFast:   "Rápido",
	TimelineUrgent: "Urgente",
}

func (t Timeline) Label() string {
	if l, ok := timelineLabels[t]; ok {
		return l
	}
	return string(t)
}

// ErrUnknownFeature is returned when a feature identifier is outside the catalog.
var ErrUnknownFeature = errors.New("unknown feature")

// NormalizeFeatures checks every identifier against the closed catalog.
// Duplicates collapse to one entry and the first-seen order is kept.
func NormalizeFeatures(in []Feature) ([]Feature, error) {
	out := make([]Feature, 0, len(in))
	seen := make(map[Feature]struct{}, len(in))
	for _, f := range in {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, string(f))
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out, nil
}

// CalculatorAnswers is the questionnaire filled in by the cost calculator wizard.
type CalculatorAnswers struct {
	ProjectType ProjectType `json:"projectType" validate:"required,oneof=landing corporate ecommerce webapp blog portfolio"`
	Pages       int         `json:"pages" validate:"required,min=1"`
	Features    []Feature   `json:"features" validate:"omitempty,dive,oneof=payments multilanguage chat booking crm analytics seo animations api admin notifications social"`
	Design      DesignTier  `json:"design" validate:"required,oneof=template custom premium"`
	Timeline    Timeline    `json:"timeline" validate:"required,oneof=normal fast urgent"`
}

// Estimate is a price range in whole COP plus a delivery range in weeks.
type Estimate struct {
	Min     int64 `json:"min"`
	Max     int64 `json:"max"`
	TimeMin int   `json:"timeMin"`
	TimeMax int   `json:"timeMax"`
}

// EstimateUsecase exposes the calculator to the HTTP layer.
type EstimateUsecase interface {
	Estimate(answers CalculatorAnswers) (*Estimate, error)
	Catalog() *CalculatorCatalog
}
