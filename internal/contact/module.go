package contact

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/store"
)

func newService(cfg *config.Config, s *store.Store, logger zerolog.Logger) *Service {
	mailer := NewMailer(cfg)
	if !mailer.Configured() {
		logger.Warn().Msg("SMTP_USER, SMTP_PASS or TO_EMAIL not set; contact messages will be stored but not emailed")
	}
	return NewService(s, mailer, logger)
}

func Module() fx.Option {
	return fx.Module(
		"contact",
		fx.Provide(newService),
	)
}
