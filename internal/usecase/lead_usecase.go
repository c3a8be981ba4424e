package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"techflow-web-backend/internal/dispatcher"
	"techflow-web-backend/internal/domain"
	"techflow-web-backend/internal/metrics"
	"techflow-web-backend/internal/pricing"
	"techflow-web-backend/pkg/apperror"
	"techflow-web-backend/pkg/logger"
	"techflow-web-backend/pkg/security"
	"techflow-web-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// LeadDispatcher delivers a validated lead to every configured sink.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, lead *domain.Lead) (*dispatcher.Report, error)
}

const (
	msgInvalidForm       = "Datos del formulario inválidos"
	msgInvalidProject    = "Tipo de proyecto inválido"
	msgMissingFields     = "Faltan campos requeridos"
	msgContactFailed     = "Error al procesar el formulario"
	msgCalculatorFailed  = "Error al procesar la solicitud"
	outcomeAccepted      = "accepted"
	outcomeInvalid       = "invalid"
	outcomeInternalError = "error"
)

type leadUsecase struct {
	dispatcher LeadDispatcher
	validate   *validator.Validate
	metrics    *metrics.LeadMetrics
	now        func() time.Time
}

// NewLeadUsecase wires validation and dispatch for both lead forms.
// metrics may be nil.
func NewLeadUsecase(d LeadDispatcher, validate *validator.Validate, m *metrics.LeadMetrics) domain.LeadUsecase {
	return &leadUsecase{
		dispatcher: d,
		validate:   validate,
		metrics:    m,
		now:        time.Now,
	}
}

func (uc *leadUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest, meta domain.RequestMeta) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)

	if err := uc.validate.Struct(req); err != nil {
		return uc.invalid(ctx, domain.SourceContactForm, meta, err, msgContactFailed)
	}

	lead := domain.NewContactLead(req, meta, uc.now())
	return uc.dispatch(ctx, lead, msgContactFailed)
}

func (uc *leadUsecase) SubmitCalculatorLead(ctx context.Context, req *domain.CalculatorLeadRequest, meta domain.RequestMeta) (*domain.Estimate, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = strings.TrimSpace(req.Company)

	if err := uc.validate.Struct(req); err != nil {
		return nil, uc.invalid(ctx, domain.SourceCalculator, meta, err, msgCalculatorFailed)
	}

	features, err := domain.NormalizeFeatures(req.CalculatorData.Features)
	if err != nil {
		uc.metrics.ObserveLead(string(domain.SourceCalculator), outcomeInvalid)
		return nil, apperror.New(http.StatusBadRequest, msgInvalidForm, err)
	}
	req.CalculatorData.Features = features

	estimate, err := pricing.Calculate(*req.CalculatorData)
	if err != nil {
		uc.metrics.ObserveLead(string(domain.SourceCalculator), outcomeInvalid)
		return nil, pricingError(err, msgInvalidForm)
	}

	if req.Estimate != nil && *req.Estimate != estimate {
		logger.Log.Warn("client estimate replaced",
			"client_min", req.Estimate.Min, "client_max", req.Estimate.Max,
			"server_min", estimate.Min, "server_max", estimate.Max,
		)
		security.DefaultLogger().LogEstimateMismatch(ctx, req.Email, meta.ClientIP,
			estimateFields(req.Estimate), estimateFields(&estimate))
	}

	lead := domain.NewCalculatorLead(req, &estimate, meta, uc.now())
	if err := uc.dispatch(ctx, lead, msgCalculatorFailed); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// invalid maps a validation failure to a 400. Anything else is an internal
// error reported with failMsg.
func (uc *leadUsecase) invalid(ctx context.Context, source domain.LeadSource, meta domain.RequestMeta, err error, failMsg string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		uc.metrics.ObserveLead(string(source), outcomeInternalError)
		return apperror.Internal(failMsg, err)
	}

	fields := validation.FormatValidationErrors(err)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	security.DefaultLogger().LogValidationFailed(ctx, string(source), meta.ClientIP, names)
	uc.metrics.ObserveLead(string(source), outcomeInvalid)

	return validationError(verrs, fields, err)
}

// validationError is a 400 listing fields. A projectType outside the catalog
// is reported as pricing.ErrInvalidProjectType.
func validationError(verrs validator.ValidationErrors, fields []validation.FieldError, err error) error {
	for _, fe := range verrs {
		if fe.Field() == "projectType" && fe.Tag() == "oneof" {
			return apperror.Validation(msgInvalidProject, fields,
				fmt.Errorf("%w: %q: %w", pricing.ErrInvalidProjectType, fe.Value(), err))
		}
	}
	return apperror.Validation(msgInvalidForm, fields, err)
}

// pricingError is a 400 for answers the pricing table rejects.
func pricingError(err error, msg string) error {
	if errors.Is(err, pricing.ErrInvalidProjectType) {
		msg = msgInvalidProject
	}
	return apperror.New(http.StatusBadRequest, msg, err)
}

func (uc *leadUsecase) dispatch(ctx context.Context, lead *domain.Lead, failMsg string) error {
	source := string(lead.Source)

	_, err := uc.dispatcher.Dispatch(ctx, lead)
	switch {
	case err == nil:
		uc.metrics.ObserveLead(source, outcomeAccepted)
		security.DefaultLogger().LogLeadAccepted(ctx, source, lead.Email, lead.ClientIP)
		return nil
	case errors.Is(err, dispatcher.ErrMissingRequiredFields):
		uc.metrics.ObserveLead(source, outcomeInvalid)
		security.DefaultLogger().LogLeadRejected(ctx, source, lead.Email, lead.ClientIP, err.Error())
		return apperror.New(http.StatusBadRequest, msgMissingFields, err)
	default:
		uc.metrics.ObserveLead(source, outcomeInternalError)
		logger.Log.Error("lead dispatch failed", "lead_id", lead.ID.String(), "source", source, "error", err)
		return apperror.Internal(failMsg, err)
	}
}

func estimateFields(e *domain.Estimate) map[string]interface{} {
	return map[string]interface{}{"min": e.Min, "max": e.Max, "timeMin": e.TimeMin, "timeMax": e.TimeMax}
}
