package v1

import (
	"net/http"

	"techflow-web-backend/internal/delivery/http/response"
	"techflow-web-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	siteUC domain.SiteUsecase
}

func NewSiteHandler(public *gin.RouterGroup, siteUC domain.SiteUsecase) {
	handler := &SiteHandler{siteUC: siteUC}

	public.GET("/health", handler.Health)
	public.GET("/site-config", handler.SiteConfig)
}

// Health godoc
// @Summary      Health Check
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *SiteHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.siteUC.Health(c.Request.Context()))
}

// SiteConfig godoc
// @Summary      Public Site Settings
// @Description  Site URL and the WhatsApp click-to-chat link.
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SiteConfig}
// @Router       /site-config [get]
func (h *SiteHandler) SiteConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.siteUC.SiteConfig())
}
