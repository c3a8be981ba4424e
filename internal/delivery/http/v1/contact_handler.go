package v1

import (
	"net/http"

	"techflow-web-backend/internal/delivery/http/response"
	"techflow-web-backend/internal/domain"
	"techflow-web-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const msgMalformedBody = "Solicitud inválida"

type ContactHandler struct {
	leadUC domain.LeadUsecase
	siteUC domain.SiteUsecase
}

// NewContactHandler registers the contact form routes. submit carries the
// per-IP lead rate limit.
func NewContactHandler(public *gin.RouterGroup, submit gin.HandlerFunc, leadUC domain.LeadUsecase, siteUC domain.SiteUsecase) {
	handler := &ContactHandler{
		leadUC: leadUC,
		siteUC: siteUC,
	}

	public.POST("/contact", submit, handler.SubmitContact)
	public.GET("/contact/options", handler.Options)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact-form lead and delivers it to every configured destination. Succeeds even when individual destinations fail.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgMalformedBody, err))
		return
	}

	if err := h.leadUC.SubmitContact(c.Request.Context(), &req, requestMeta(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Formulario recibido correctamente", nil)
}

// Options godoc
// @Summary      Contact Form Options
// @Description  Service and budget choices with their Spanish labels.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ContactOptions}
// @Router       /contact/options [get]
func (h *ContactHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.siteUC.ContactOptions())
}

func requestMeta(c *gin.Context) domain.RequestMeta {
	return domain.RequestMeta{
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
