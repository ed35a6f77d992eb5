package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Zachkp/folio/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

func New(lc fx.Lifecycle, p Params) (*Store, error) {
	s, err := Open(context.Background(), p.Config.DatabasePath)
	if err != nil {
		return nil, err
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				p.Logger.Info().Str("path", p.Config.DatabasePath).Msg("database ready")
				// Old visitor rows are dropped on boot to honour the retention window.
				cutoff := time.Now().Add(-p.Config.VisitorRetention)
				n, err := s.CleanupVisitors(ctx, cutoff)
				if err != nil {
					p.Logger.Error().Err(err).Msg("visitor cleanup failed")
					return nil
				}
				if n > 0 {
					p.Logger.Info().Int64("removed", n).Msg("privacy cleanup removed old visitor records")
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				p.Logger.Info().Msg("closing database")
				return s.Close()
			},
		},
	)

	return s, nil
}

func Module() fx.Option {
	return fx.Module(
		"store",
		fx.Provide(New),
	)
}
