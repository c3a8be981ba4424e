package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LeadSource identifies which form produced a lead.
type LeadSource string

const (
	SourceContactForm LeadSource = "contact-form"
	SourceCalculator  LeadSource = "web-cost-calculator"
)

// Label is the fixed tag downstream automations filter on.
func (s LeadSource) Label() string {
	switch s {
	case SourceContactForm:
		return "Website Contact Form"
	case SourceCalculator:
		return "Web Cost Calculator"
	default:
		return string(s)
	}
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,valid_phone"`
	Company string `json:"company" validate:"omitempty,min=2"`
	Service string `json:"service" validate:"required,oneof=marketing-digital automatizacion chatbots-ia desarrollo-web seo consultoria"`
	Budget  string `json:"budget" validate:"required,oneof=0-1m 1m-3m 3m-5m 5m-10m 10m+ consultar"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
	Consent bool   `json:"consent" validate:"accepted"`
}

// CalculatorLeadRequest is the body of POST /calculator-lead.
type CalculatorLeadRequest struct {
	Name           string             `json:"name" validate:"required,min=2,max=50"`
	Email          string             `json:"email" validate:"required,email"`
	Phone          string             `json:"phone" validate:"required,min=10,valid_phone"`
	Company        string             `json:"company" validate:"omitempty,min=2"`
	CalculatorData *CalculatorAnswers `json:"calculatorData" validate:"required"`
	Estimate       *Estimate          `json:"estimate"`
	Type           string             `json:"type"`
	Timestamp      string             `json:"timestamp"`
}

// RequestMeta carries transport details recorded alongside a lead.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
}

// Lead is a validated submission ready for delivery.
type Lead struct {
	ID          uuid.UUID
	Source      LeadSource
	Name        string
	Email       string
	Phone       string
	Company     string
	Service     string
	Budget      string
	Message     string
	Consent     bool
	Answers     *CalculatorAnswers
	Estimate    *Estimate
	SubmittedAt time.Time
	ClientIP    string
	UserAgent   string
}

// NewContactLead builds a lead from an already validated contact request.
func NewContactLead(req *ContactRequest, meta RequestMeta, now time.Time) *Lead {
	return &Lead{
		ID:          uuid.New(),
		Source:      SourceContactForm,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Service:     req.Service,
		Budget:      req.Budget,
		Message:     req.Message,
		Consent:     req.Consent,
		SubmittedAt: now,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}
}

// NewCalculatorLead builds a lead carrying the server-computed estimate.
func NewCalculatorLead(req *CalculatorLeadRequest, estimate *Estimate, meta RequestMeta, now time.Time) *Lead {
	return &Lead{
		ID:          uuid.New(),
		Source:      SourceCalculator,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Service:     ServiceDesarrolloWeb,
		Answers:     req.CalculatorData,
		Estimate:    estimate,
		SubmittedAt: now,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}
}

// FirstName is the first word of the full name.
func (l *Lead) FirstName() string {
	parts := strings.Fields(l.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName is everything after the first word.
func (l *Lead) LastName() string {
	parts := strings.Fields(l.Name)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// MissingFields lists required fields that are blank for this lead's source.
func (l *Lead) MissingFields() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("name", l.Name)
	check("email", l.Email)
	check("phone", l.Phone)
	switch l.Source {
	case SourceContactForm:
		check("message", l.Message)
	case SourceCalculator:
		if l.Answers == nil {
			missing = append(missing, "calculatorData")
		}
		if l.Estimate == nil {
			missing = append(missing, "estimate")
		}
	}
	return missing
}

// LeadRepository archives accepted leads.
type LeadRepository interface {
	Save(ctx context.Context, lead *Lead) error
}

// LeadUsecase validates submissions and hands them to the dispatcher.
type LeadUsecase interface {
	SubmitContact(ctx context.Context, req *ContactRequest, meta RequestMeta) error
	SubmitCalculatorLead(ctx context.Context, req *CalculatorLeadRequest, meta RequestMeta) (*Estimate, error)
}
