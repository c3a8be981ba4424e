package v1

import (
	"net/http"

	"techflow-web-backend/internal/delivery/http/response"
	"techflow-web-backend/internal/domain"
	"techflow-web-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	leadUC     domain.LeadUsecase
	estimateUC domain.EstimateUsecase
}

// NewCalculatorHandler registers the cost calculator routes.
func NewCalculatorHandler(public *gin.RouterGroup, submit gin.HandlerFunc, leadUC domain.LeadUsecase, estimateUC domain.EstimateUsecase) {
	handler := &CalculatorHandler{
		leadUC:     leadUC,
		estimateUC: estimateUC,
	}

	public.POST("/calculator-lead", submit, handler.SubmitLead)

	calc := public.Group("/calculator")
	{
		calc.POST("/estimate", handler.Estimate)
		calc.GET("/catalog", handler.Catalog)
	}
}

// SubmitLead godoc
// @Summary      Submit Calculator Lead
// @Description  Recomputes the estimate from the answers, replaces the client's figure and delivers the lead.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        lead  body      domain.CalculatorLeadRequest  true  "Calculator answers and contact details"
// @Success      200   {object}  response.Response{data=domain.Estimate}
// @Failure      400   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /calculator-lead [post]
func (h *CalculatorHandler) SubmitLead(c *gin.Context) {
	var req domain.CalculatorLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgMalformedBody, err))
		return
	}

	estimate, err := h.leadUC.SubmitCalculatorLead(c.Request.Context(), &req, requestMeta(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Cotización generada correctamente", estimate)
}

// Estimate godoc
// @Summary      Quote a Project
// @Description  Prices calculator answers without creating a lead.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        answers  body      domain.CalculatorAnswers  true  "Calculator answers"
// @Success      200      {object}  response.Response{data=domain.Estimate}
// @Failure      400      {object}  response.Response
// @Router       /calculator/estimate [post]
func (h *CalculatorHandler) Estimate(c *gin.Context) {
	var answers domain.CalculatorAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgMalformedBody, err))
		return
	}

	estimate, err := h.estimateUC.Estimate(answers)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", estimate)
}

// Catalog godoc
// @Summary      Pricing Catalog
// @Description  Project types, page brackets, features, design tiers and timelines with prices.
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CalculatorCatalog}
// @Router       /calculator/catalog [get]
func (h *CalculatorHandler) Catalog(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.estimateUC.Catalog())
}
