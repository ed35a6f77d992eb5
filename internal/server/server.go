package server

import (
	"context"
	"embed"
	"html/template"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/internal/chatbot"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Store is the persistence the HTTP layer records metrics into and reads the
// admin dashboard from.
type Store interface {
	Ping(ctx context.Context) error
	RecordVisit(ctx context.Context, v store.Visit) error
	RecordIntent(ctx context.Context, category string, at time.Time) error
	CleanupVisitors(ctx context.Context, cutoff time.Time) (int64, error)
	RecentContacts(ctx context.Context, limit int) ([]store.ContactMessage, error)
	Stats(ctx context.Context, now time.Time) (*store.Stats, error)
}

// ContactSubmitter forwards contact form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, s contact.Submission) (string, error)
}

type Server struct {
	cfg       *config.Config
	logger    zerolog.Logger
	doc       *content.Document
	responder *chatbot.Responder
	contacts  ContactSubmitter
	store     Store
	admin     *adminAuth

	tracking sync.WaitGroup
}

func New(
	cfg *config.Config,
	logger zerolog.Logger,
	doc *content.Document,
	responder *chatbot.Responder,
	contacts ContactSubmitter,
	st Store,
) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger,
		doc:       doc,
		responder: responder,
		contacts:  contacts,
		store:     st,
		admin:     newAdminAuth(cfg),
	}
}

// background runs fn off the request path. Wait blocks until every such
// call has returned.
func (s *Server) background(fn func()) {
	s.tracking.Add(1)
	go func() {
		defer s.tracking.Done()
		fn()
	}()
}

func (s *Server) Wait() {
	s.tracking.Wait()
}

// Router builds the gin engine with every route and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), corsMiddleware(s.cfg.AllowedOrigins))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	r.Static("/static", "./static")
	r.Static("/images", "./images")

	r.GET("/healthcheck", s.healthcheck)

	site := r.Group("/")
	site.Use(s.visitorTracking())
	{
		site.GET("/", s.index)
		site.GET("/privacy", s.privacy)
		site.GET("/contact-form", s.contactForm)
		site.POST("/contact", s.contactFormSubmit)
		if s.cfg.ResumePath != "" {
			site.GET("/resume.pdf", s.resume)
		}
	}

	api := r.Group("/api")
	{
		api.GET("/portfolio", s.portfolio)
		api.POST("/chat", s.chat)
		api.POST("/contact", s.contactSubmit)
	}

	s.setupAdminRoutes(r)
	return r
}
