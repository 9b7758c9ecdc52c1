// middleware/session_middleware.go
package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
	"github.com/lumen-social/lumen/sessions"
)

// Context keys set by LoadSession
const (
	contextSessionKey = "session"
	contextUserKey    = "currentUser"
)

// SessionManager resolves the acting user from the signed session
// cookie and exposes login/logout helpers to the controllers.
type SessionManager struct {
	store sessions.Store
	codec *sessions.CookieCodec
	users repositories.UserRepository
}

func NewSessionManager(store sessions.Store, codec *sessions.CookieCodec, users repositories.UserRepository) *SessionManager {
	return &SessionManager{store: store, codec: codec, users: users}
}

// LoadSession resolves the session and the acting user for every
// request. A session whose user no longer exists is destroyed and the
// visitor is sent back to login, matching how the views expect a valid
// currentUser whenever a session names one.
func (m *SessionManager) LoadSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := m.resolveSession(c)
			if session == nil {
				return next(c)
			}
			c.Set(contextSessionKey, session)

			if session.UserID != "" {
				user, err := m.users.FindByID(c.Request().Context(), session.UserID)
				if err != nil {
					log.Printf("Error resolving session user: %v", err)
					return next(c)
				}
				if user == nil {
					if err := m.store.Delete(c.Request().Context(), session.ID); err != nil {
						log.Printf("Error destroying session %s: %v", session.ID, err)
					}
					m.clearCookie(c)
					return c.Redirect(http.StatusFound, "/login?error=user_not_found")
				}
				c.Set(contextUserKey, user)
			}
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous visitors to /login, recording the
// original URL so a successful login returns there once.
func (m *SessionManager) RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) != nil {
				return next(c)
			}

			session := SessionFromContext(c)
			if session == nil {
				created, err := m.store.Create(c.Request().Context())
				if err != nil {
					log.Printf("Error creating session: %v", err)
					return c.Redirect(http.StatusFound, "/login")
				}
				session = created
				c.Set(contextSessionKey, session)
			}
			session.ReturnTo = c.Request().URL.RequestURI()
			if err := m.store.Save(c.Request().Context(), session); err != nil {
				log.Printf("Error saving session: %v", err)
			}
			m.writeCookie(c, session)
			return c.Redirect(http.StatusFound, "/login")
		}
	}
}

// Login binds the user to the visitor's session, reusing an anonymous
// session (and its recorded ReturnTo) when one exists.
func (m *SessionManager) Login(c echo.Context, userID string) error {
	session := SessionFromContext(c)
	if session == nil {
		created, err := m.store.Create(c.Request().Context())
		if err != nil {
			return err
		}
		session = created
		c.Set(contextSessionKey, session)
	}
	session.UserID = userID
	if err := m.store.Save(c.Request().Context(), session); err != nil {
		return err
	}
	m.writeCookie(c, session)
	return nil
}

// Logout destroys the session and expires the cookie.
func (m *SessionManager) Logout(c echo.Context) {
	if session := SessionFromContext(c); session != nil {
		if err := m.store.Delete(c.Request().Context(), session.ID); err != nil {
			log.Printf("Error destroying session %s: %v", session.ID, err)
		}
	}
	m.clearCookie(c)
}

// TakeReturnTo consumes the deferred destination recorded before an
// auth redirect. Returns "" when none was recorded.
func (m *SessionManager) TakeReturnTo(c echo.Context) string {
	session := SessionFromContext(c)
	if session == nil || session.ReturnTo == "" {
		return ""
	}
	returnTo := session.ReturnTo
	session.ReturnTo = ""
	if err := m.store.Save(c.Request().Context(), session); err != nil {
		log.Printf("Error clearing returnTo: %v", err)
	}
	return returnTo
}

func (m *SessionManager) resolveSession(c echo.Context) *sessions.Session {
	cookie, err := c.Cookie(sessions.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sid, err := m.codec.Decode(cookie.Value)
	if err != nil {
		m.clearCookie(c)
		return nil
	}
	session, err := m.store.Get(c.Request().Context(), sid)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return nil
	}
	if session == nil {
		m.clearCookie(c)
	}
	return session
}

func (m *SessionManager) writeCookie(c echo.Context, session *sessions.Session) {
	value, err := m.codec.Encode(session.ID, session.ExpiresAt)
	if err != nil {
		log.Printf("Error signing session cookie: %v", err)
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     sessions.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionManager) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// CurrentUser returns the acting user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *models.User {
	if user, ok := c.Get(contextUserKey).(*models.User); ok {
		return user
	}
	return nil
}

// CurrentUserID returns the acting user's id, or "" when anonymous.
func CurrentUserID(c echo.Context) string {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return ""
}

// SessionFromContext returns the resolved session, if any.
func SessionFromContext(c echo.Context) *sessions.Session {
	if session, ok := c.Get(contextSessionKey).(*sessions.Session); ok {
		return session
	}
	return nil
}
