package chatbot

import "go.uber.org/fx"

func newResponder(r Replies) *Responder {
	return NewResponder(NewCatalog(r))
}

// Module provides a *Responder built from whatever Replies the graph supplies.
func Module() fx.Option {
	return fx.Module(
		"chatbot",
		fx.Provide(newResponder),
	)
}
