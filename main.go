package main

import (
	"go.uber.org/fx"

	"github.com/Zachkp/folio/internal/chatbot"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/log"
	"github.com/Zachkp/folio/internal/server"
	"github.com/Zachkp/folio/internal/store"
)

func main() {
	fx.New(
		fx.WithLogger(log.FxLogger),
		config.Module(),
		log.Module(),
		content.Module(),
		chatbot.Module(),
		store.Module(),
		contact.Module(),
		server.Module(),
	).Run()
}
