package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studio-admin-api/internal/models"
)

// sessionContextKey is the gin context key the admin gate stores the
// resolved session under.
const sessionContextKey = "session"

// Session represents an authenticated admin session.
type Session struct {
	AccountID int
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// SessionStore is an in-memory session store keyed by opaque tokens.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

// NewSessionStore creates a session store whose sessions expire after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create stores a new session and returns its token.
func (ss *SessionStore) Create(s Session) string {
	token := uuid.NewString()
	s.CreatedAt = time.Now()
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = s
	return token
}

// Get retrieves a live session by token, dropping it once expired.
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Since(session.CreatedAt) > ss.ttl {
		delete(ss.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Delete removes a session by token.
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

// RequireAdmin gates every administrative operation: no valid session is
// rejected as unauthenticated, a valid session without the admin role as
// forbidden. Both short-circuit before any controller code runs.
func RequireAdmin(sessions *SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": models.ErrUnauthenticated.Error()})
			return
		}
		session, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": models.ErrUnauthenticated.Error()})
			return
		}
		if session.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": models.ErrForbidden.Error()})
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session the admin gate resolved for this
// request, if any.
func SessionFromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return Session{}, false
	}
	session, ok := v.(Session)
	return session, ok
}
