package domain

import "context"

// Service keys accepted by the contact form.
const (
	ServiceMarketingDigital = "marketing-digital"
	ServiceAutomatizacion   = "automatizacion"
	ServiceChatbotsIA       = "chatbots-ia"
	ServiceDesarrolloWeb    = "desarrollo-web"
	ServiceSEO              = "seo"
	ServiceConsultoria      = "consultoria"
)

// Option is a key with its Spanish display label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Services = []Option{
	{ID: ServiceMarketingDigital, Label: "Marketing Digital"},
	{ID: ServiceAutomatizacion, Label: "Automatización de Procesos"},
	{ID: ServiceChatbotsIA, Label: "Chatbots & IA"},
	{ID: ServiceDesarrolloWeb, Label: "Desarrollo Web"},
	{ID: ServiceSEO, Label: "SEO & Posicionamiento"},
	{ID: ServiceConsultoria, Label: "Consultoría Integral"},
}

var Budgets = []Option{
	{ID: "0-1m", Label: "Menos de $1M COP"},
	{ID: "1m-3m", Label: "$1M - $3M COP"},
	{ID: "3m-5m", Label: "$3M - $5M COP"},
	{ID: "5m-10m", Label: "$5M - $10M COP"},
	{ID: "10m+", Label: "Más de $10M COP"},
	{ID: "consultar", Label: "Prefiere consultarlo"},
}

// ServiceLabel falls back to the raw key for unknown services.
func ServiceLabel(id string) string {
	return lookupLabel(Services, id)
}

func BudgetLabel(id string) string {
	return lookupLabel(Budgets, id)
}

func lookupLabel(options []Option, id string) string {
	for _, o := range options {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

// ContactOptions feeds the service and budget selects of the contact form.
type ContactOptions struct {
	Services []Option `json:"services"`
	Budgets  []Option `json:"budgets"`
}

type ProjectTypeOption struct {
	ID       ProjectType `json:"id"`
	Label    string      `json:"label"`
	MinPrice int64       `json:"minPrice"`
	MaxPrice int64       `json:"maxPrice"`
	Weeks    float64     `json:"weeks"`
}

type PageBracketOption struct {
	Label      string  `json:"label"`
	MaxPages   int     `json:"maxPages,omitempty"` // zero means unbounded
	Multiplier float64 `json:"multiplier"`
}

type FeatureOption struct {
	ID    Feature `json:"id"`
	Label string  `json:"label"`
	Price int64   `json:"price"`
	Weeks float64 `json:"weeks"`
}

type MultiplierOption struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	TimeFactor float64 `json:"timeFactor,omitempty"`
}

// CalculatorCatalog is the pricing table as rendered by the wizard.
type CalculatorCatalog struct {
	Currency     string              `json:"currency"`
	ProjectTypes []ProjectTypeOption `json:"projectTypes"`
	PageBrackets []PageBracketOption `json:"pageBrackets"`
	Features     []FeatureOption     `json:"features"`
	Designs      []MultiplierOption  `json:"designs"`
	Timelines    []MultiplierOption  `json:"timelines"`
}

// SiteConfig is the public contact information the frontend needs.
type SiteConfig struct {
	SiteURL         string `json:"siteUrl"`
	WhatsAppNumber  string `json:"whatsappNumber"`
	WhatsAppMessage string `json:"whatsappMessage"`
	WhatsAppLink    string `json:"whatsappLink"`
}

type SiteUsecase interface {
	SiteConfig() *SiteConfig
	ContactOptions() *ContactOptions
	Health(ctx context.Context) map[string]string
}
