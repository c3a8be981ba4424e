package usecase

import (
	"context"
	"strings"
	"time"

	"techflow-web-backend/config"
	"techflow-web-backend/internal/domain"
	"techflow-web-backend/pkg/whatsapp"
)

// PingFunc reports whether a backing service answers.
type PingFunc func(ctx context.Context) error

type siteUsecase struct {
	site      *domain.SiteConfig
	options   *domain.ContactOptions
	sinkNames []string
	redisPing PingFunc
}

// NewSiteUsecase serves the public site settings. redisPing may be nil when
// rate limiting runs in memory.
func NewSiteUsecase(cfg *config.Config, sinkNames []string, redisPing PingFunc) domain.SiteUsecase {
	return &siteUsecase{
		site: &domain.SiteConfig{
			SiteURL:         cfg.SiteURL,
			WhatsAppNumber:  cfg.WhatsAppNumber,
			WhatsAppMessage: cfg.WhatsAppMessage,
			WhatsAppLink:    whatsapp.Link(cfg.WhatsAppNumber, cfg.WhatsAppMessage),
		},
		options: &domain.ContactOptions{
			Services: domain.Services,
			Budgets:  domain.Budgets,
		},
		sinkNames: sinkNames,
		redisPing: redisPing,
	}
}

func (u *siteUsecase) SiteConfig() *domain.SiteConfig {
	return u.site
}

func (u *siteUsecase) ContactOptions() *domain.ContactOptions {
	return u.options
}

// Health never fails the probe on Redis: the limiter degrades to memory.
func (u *siteUsecase) Health(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"sinks":  strings.Join(u.sinkNames, ","),
		"redis":  "disabled",
	}
	if len(u.sinkNames) == 0 {
		status["sinks"] = "none"
	}

	if u.redisPing != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := u.redisPing(ctx); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}
