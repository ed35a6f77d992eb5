package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/chatbot"
	"github.com/Zachkp/folio/internal/contact"
)

const (
	contactThanks = "Thank you for your message! I'll get back to you soon."
	contactFailed = "Sorry, there was an error sending your message. Please try again later."
)

func (s *Server) healthcheck(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.logger.Error().Err(err).Msg("healthcheck: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Home page route
func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":        s.doc.Profile,
		"projects":       s.doc.Projects,
		"skills":         s.doc.Skills,
		"awards":         s.doc.Awards,
		"certifications": s.doc.Certifications,
		"milestones":     s.doc.Milestones,
		"hasResume":      s.cfg.ResumePath != "",
		"chatRules":      chatbot.Rules(),
		"chatReplies":    s.responder.Catalog().Replies(),
	})
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":         "Privacy Policy",
		"retentionDays": int(s.cfg.VisitorRetention.Hours() / 24),
	})
}

func (s *Server) resume(c *gin.Context) {
	c.FileAttachment(s.cfg.ResumePath, s.doc.Profile.ResumeFilename)
}

func (s *Server) portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.doc)
}

func (s *Server) chat(c *gin.Context) {
	var req chatbot.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object with a message field"})
		return
	}

	reply, category := s.responder.Answer(req.Message)
	s.background(func() { s.trackIntent(category.String()) })

	c.JSON(http.StatusOK, chatbot.ChatResponse{Response: reply})
}

// HTMX Contact form endpoint - returns just the form HTML
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// contactFormSubmit handles the HTMX form post. Fragments are always sent
// with 200 so htmx swaps them in.
func (s *Server) contactFormSubmit(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactFailed})
		return
	}

	_, err := s.contacts.Submit(c.Request.Context(), sub)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": contactThanks})
	case errors.Is(err, contact.ErrInvalidSubmission):
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": validationMessage(err)})
	default:
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactFailed})
	}
}

// contactSubmit is the JSON variant used by script clients.
func (s *Server) contactSubmit(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	id, err := s.contacts.Submit(c.Request.Context(), sub)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"id": id, "message": contactThanks})
	case errors.Is(err, contact.ErrInvalidSubmission):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	case errors.Is(err, contact.ErrMailNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact form delivery is not configured", "id": id})
	case id != "":
		c.JSON(http.StatusBadGateway, gin.H{"error": contactFailed, "id": id})
	default:
		s.logger.Error().Err(err).Msg("contact submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": contactFailed})
	}
}

// validationMessage strips the sentinel suffix so visitors only see the reason.
func validationMessage(err error) string {
	return strings.TrimSuffix(err.Error(), ": "+contact.ErrInvalidSubmission.Error())
}
