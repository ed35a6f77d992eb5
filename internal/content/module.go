package content

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Zachkp/folio/internal/chatbot"
	"github.com/Zachkp/folio/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Document *Document
	Replies  chatbot.Replies
}

func New(p Params) (Result, error) {
	doc, err := Load(p.Config.ContentFile)
	if err != nil {
		return Result{}, err
	}
	p.Logger.Info().
		Str("file", p.Config.ContentFile).
		Int("projects", len(doc.Projects)).
		Int("skills", len(doc.Skills)).
		Msg("portfolio content loaded")

	return Result{Document: doc, Replies: doc.Replies}, nil
}

func Module() fx.Option {
	return fx.Module(
		"content",
		fx.Provide(New),
	)
}
