package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/config"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/service"
)

// AuthHandler exposes the authentication gate: signup, login, logout and
// the current-session probe.
type AuthHandler struct {
	auth     service.AuthService
	sessions *SessionStore
	cfg      config.AuthConfig
	log      zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService, sessions *SessionStore, cfg config.AuthConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		cfg:      cfg,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountView is the wire shape of an account. The password hash never
// leaves the server.
type accountView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func viewOf(a *models.Account) accountView {
	return accountView{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	account, err := h.auth.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    viewOf(account),
	})
}

// Login handles POST /api/auth/login. On success a session is created and
// its token set as an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	account, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	token := h.sessions.Create(Session{
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
	})

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, token, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    viewOf(account),
	})
}

// Logout handles POST /api/auth/logout. Logging out twice is harmless.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.SessionCookie); err == nil && token != "" {
		h.sessions.Delete(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", h.cfg.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/auth/me and reports the session behind the cookie,
// whatever its role.
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(h.cfg.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrUnauthenticated.Error()})
		return
	}
	session, ok := h.sessions.Get(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrUnauthenticated.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": accountView{ID: session.AccountID, Name: session.Name, Email: session.Email, Role: session.Role},
	})
}
