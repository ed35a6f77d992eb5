package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Zachkp/folio/internal/chatbot"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/store"
)

type Params struct {
	fx.In

	Config    *config.Config
	Logger    zerolog.Logger
	Document  *content.Document
	Responder *chatbot.Responder
	Contacts  *contact.Service
	Store     *store.Store
}

func NewHTTPServer(lc fx.Lifecycle, p Params) *http.Server {
	gin.SetMode(p.Config.GinMode)

	s := New(p.Config, p.Logger, p.Document, p.Responder, p.Contacts, p.Store)
	srv := &http.Server{
		Addr:         p.Config.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  p.Config.ReadTimeout,
		WriteTimeout: p.Config.WriteTimeout,
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				ln, err := net.Listen("tcp", srv.Addr)
				if err != nil {
					return err
				}
				p.Logger.Info().Str("addr", srv.Addr).Msg("http server listening")
				if s.admin.enabled() {
					p.Logger.Info().Msg("admin access available at /admin/login")
				}
				go func() {
					if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
						p.Logger.Error().Err(err).Msg("http server stopped")
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				p.Logger.Info().Msg("shutting down http server")
				err := srv.Shutdown(ctx)
				// Pending metric writes must land before the store closes.
				s.Wait()
				return err
			},
		},
	)

	return srv
}

func Module() fx.Option {
	return fx.Module(
		"server",
		fx.Provide(NewHTTPServer),
		fx.Invoke(func(*http.Server) {}),
	)
}
