// Command ask sends one question to the portfolio chat endpoint and prints
// the reply, answering locally when the server cannot be reached.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/internal/chatbot"
	"github.com/Zachkp/folio/internal/content"
)

type options struct {
	Server  string        `short:"s" long:"server" env:"FOLIO_SERVER" default:"http://localhost:8080" description:"portfolio server base URL; empty answers locally"`
	Timeout time.Duration `short:"t" long:"timeout" default:"5s" description:"request timeout"`
	Content string        `short:"c" long:"content" env:"CONTENT_FILE" default:"content.toml" description:"content file for local replies"`
	Verbose bool          `short:"v" long:"verbose" description:"log fallbacks to stderr"`
	Args    struct {
		Message []string `positional-arg-name:"message"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintln(os.Stderr, "ask:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	doc, err := content.Load(opts.Content)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if opts.Verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	local := chatbot.NewResponder(chatbot.NewCatalog(doc.Replies))
	client := chatbot.NewClient(opts.Server, local,
		chatbot.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
		chatbot.WithLogger(logger),
	)

	reply, remote := client.Ask(ctx, strings.Join(opts.Args.Message, " "))
	logger.Debug().Bool("remote", remote).Msg("answered")
	fmt.Println(reply)
	return nil
}
