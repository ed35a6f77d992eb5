package server

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
)

const adminCookie = "admin_token"

// adminAuth holds the per-process session token and the salt used to hash
// visitor addresses. Both are regenerated on every start.
type adminAuth struct {
	token    string
	salt     string
	username string
	password string
	on       bool
}

func newAdminAuth(cfg *config.Config) *adminAuth {
	return &adminAuth{
		token:    randomHex(),
		salt:     randomHex(),
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		on:       cfg.AdminEnabled(),
	}
}

func randomHex() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

func (a *adminAuth) enabled() bool {
	return a.on
}

// hashIP is stable for a given address within one process lifetime.
func (a *adminAuth) hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(hash[:])[:16]
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	if !a.enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if !a.enabled() || err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				c.Redirect(http.StatusFound, "/admin/login")
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		if !s.admin.enabled() {
			c.HTML(http.StatusForbidden, "admin-login.html", gin.H{"error": "Admin login is disabled"})
			return
		}
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.admin.enabled() {
			c.HTML(http.StatusForbidden, "admin-login.html", gin.H{"error": "Admin login is disabled"})
			return
		}

		if s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", c.Request.TLS != nil, true)
			s.logger.Info().Str("client", s.admin.hashIP(c.ClientIP())).Msg("admin login successful")
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		s.logger.Warn().Str("client", s.admin.hashIP(c.ClientIP())).Msg("failed admin login attempt")
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.admin.middleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			s.logger.Error().Err(err).Msg("error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-dashboard.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/api/contacts", func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 || limit > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		messages, err := s.store.RecentContacts(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"contacts": messages})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		cutoff := time.Now().Add(-s.cfg.VisitorRetention)
		removed, err := s.store.CleanupVisitors(c.Request.Context(), cutoff)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.logger.Info().Str("client", s.admin.hashIP(c.ClientIP())).Msg("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})
}
