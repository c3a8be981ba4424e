package usecase

import (
	"errors"

	"techflow-web-backend/internal/domain"
	"techflow-web-backend/internal/pricing"
	"techflow-web-backend/pkg/apperror"
	"techflow-web-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type estimateUsecase struct {
	table    *pricing.Table
	validate *validator.Validate
	catalog  *domain.CalculatorCatalog
}

// NewEstimateUsecase serves quotes and the catalog from one pricing table.
func NewEstimateUsecase(table *pricing.Table, validate *validator.Validate) domain.EstimateUsecase {
	return &estimateUsecase{
		table:    table,
		validate: validate,
		catalog:  table.Catalog(),
	}
}

func (uc *estimateUsecase) Estimate(answers domain.CalculatorAnswers) (*domain.Estimate, error) {
	if err := uc.validate.Struct(answers); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, validationError(verrs, validation.FormatValidationErrors(err), err)
		}
		return nil, apperror.Internal(msgCalculatorFailed, err)
	}

	estimate, err := uc.table.Calculate(answers)
	if err != nil {
		return nil, pricingError(err, err.Error())
	}
	return &estimate, nil
}

func (uc *estimateUsecase) Catalog() *domain.CalculatorCatalog {
	return uc.catalog
}
