package dispatcher

import (
	"fmt"
	"strings"
	"time"

	"techflow-web-backend/internal/domain"
	"techflow-web-backend/pkg/crm"
	"techflow-web-backend/pkg/email"
	"techflow-web-backend/pkg/notion"
	"techflow-web-backend/pkg/whatsapp"

	"github.com/jomei/notionapi"
)

// EstimateRange prints a price range, e.g. "$2.000.000 - $4.000.000 COP".
func EstimateRange(e *domain.Estimate) string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s - %s COP", email.FormatCOP(e.Min), email.FormatCOP(e.Max))
}

func featureLabels(features []domain.Feature) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		out = append(out, f.Label())
	}
	return out
}

// ProjectDetails is the plain-text summary of a calculator lead.
func ProjectDetails(lead *domain.Lead) string {
	a, e := lead.Answers, lead.Estimate
	if a == nil || e == nil {
		return ""
	}
	features := "Ninguna"
	if len(a.Features) > 0 {
		features = strings.Join(featureLabels(a.Features), ", ")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Tipo de Proyecto: %s\n", a.ProjectType.Label())
	fmt.Fprintf(&b, "Páginas: %d\n", a.Pages)
	fmt.Fprintf(&b, "Diseño: %s\n", a.Design.Label())
	fmt.Fprintf(&b, "Timeline: %s\n", a.Timeline.Label())
	fmt.Fprintf(&b, "Funcionalidades: %s\n", features)
	fmt.Fprintf(&b, "Estimado: %s\n", EstimateRange(e))
	fmt.Fprintf(&b, "Tiempo: %d-%d semanas", e.TimeMin, e.TimeMax)
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// webhookPayload mirrors the submitted form plus routing metadata.
func webhookPayload(lead *domain.Lead) map[string]interface{} {
	p := map[string]interface{}{
		"leadId":      lead.ID.String(),
		"name":        lead.Name,
		"email":       lead.Email,
		"phone":       lead.Phone,
		"company":     lead.Company,
		"submittedAt": lead.SubmittedAt.UTC().Format(time.RFC3339),
		"ip":          orUnknown(lead.ClientIP),
		"userAgent":   orUnknown(lead.UserAgent),
	}
	switch lead.Source {
	case domain.SourceCalculator:
		p["source"] = lead.Source.Label()
		p["type"] = "calculator_lead"
		p["calculatorData"] = lead.Answers
		p["estimate"] = lead.Estimate
		p["projectDetails"] = ProjectDetails(lead)
	default:
		p["leadSource"] = lead.Source.Label()
		p["service"] = lead.Service
		p["budget"] = lead.Budget
		p["message"] = lead.Message
		p["consent"] = lead.Consent
	}
	return p
}

func emailData(lead *domain.Lead) email.LeadEmailData {
	data := email.LeadEmailData{
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Company:     lead.Company,
		Service:     domain.ServiceLabel(lead.Service),
		Budget:      domain.BudgetLabel(lead.Budget),
		Message:     lead.Message,
		SubmittedAt: email.FormatDateTime(lead.SubmittedAt),
		WhatsAppURL: whatsapp.Link(lead.Phone, ""),
	}
	if a, e := lead.Answers, lead.Estimate; a != nil && e != nil {
		data.Project = &email.ProjectData{
			Type:        a.ProjectType.Label(),
			Pages:       a.Pages,
			Design:      a.Design.Label(),
			Timeline:    a.Timeline.Label(),
			Features:    featureLabels(a.Features),
			EstimateMin: email.FormatCOP(e.Min),
			EstimateMax: email.FormatCOP(e.Max),
			TimeMin:     e.TimeMin,
			TimeMax:     e.TimeMax,
		}
	}
	return data
}

func emailSubject(lead *domain.Lead) string {
	if lead.Source == domain.SourceCalculator && lead.Answers != nil {
		return fmt.Sprintf("💰 Lead Calculadora: %s - %s", lead.Name, lead.Answers.ProjectType.Label())
	}
	return fmt.Sprintf("Nuevo Lead: %s - %s", lead.Name, domain.ServiceLabel(lead.Service))
}

func crmProperties(lead *domain.Lead) crm.ContactProperties {
	props := crm.ContactProperties{
		FirstName:       lead.FirstName(),
		LastName:        lead.LastName(),
		Email:           lead.Email,
		Phone:           lead.Phone,
		Company:         lead.Company,
		ServiceInterest: lead.Service,
		BudgetRange:     lead.Budget,
		Message:         lead.Message,
		LeadSource:      crm.LeadSourceWebsite,
	}
	if lead.Source == domain.SourceCalculator {
		props.BudgetRange = EstimateRange(lead.Estimate)
		props.Message = ProjectDetails(lead)
	}
	return props
}

func notionProperties(lead *domain.Lead) map[string]notionapi.Property {
	budget, message := lead.Budget, lead.Message
	if lead.Source == domain.SourceCalculator {
		budget = EstimateRange(lead.Estimate)
		message = ProjectDetails(lead)
	}
	return map[string]notionapi.Property{
		"Nombre":      notion.Title(lead.Name),
		"Email":       notion.Email(lead.Email),
		"Teléfono":    notion.PhoneNumber(lead.Phone),
		"Empresa":     notion.RichText(lead.Company),
		"Servicio":    notion.Select(lead.Service),
		"Presupuesto": notion.Select(budget),
		"Mensaje":     notion.RichText(message),
		"Fecha":       notion.Date(lead.SubmittedAt),
		"Estado":      notion.Select("Nuevo"),
	}
}
