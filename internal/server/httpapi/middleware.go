package httpapi

import (
	"net/http"

	"github.com/amankou/farmauth/internal/common"
	"github.com/gin-gonic/gin"
)

// Context keys set by requireSession for downstream handlers.
const (
	ctxKeyAccount = "session.account"
	ctxKeyToken   = "session.token"
)

// requireSession gates a route on a valid session token. The token is read
// from the session cookie and verified (signature, expiry, account still
// present); on success the sanitized account and the presented token are
// attached to the context. On any failure the downstream handler never runs.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, "authentication required"))
			return
		}

		account, err := s.accounts.VerifySession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, err.Error()))
			return
		}

		c.Set(ctxKeyAccount, account)
		c.Set(ctxKeyToken, token)
		c.Next()
	}
}

// setSessionCookie attaches the session token as an HTTP-only cookie whose
// max-age matches the token's validity. Outside development the cookie is
// Secure with SameSite=Strict.
func (s *Server) setSessionCookie(c *gin.Context, token string) {
	if s.cfg.IsDevelopment() {
		c.SetSameSite(http.SameSiteLaxMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	maxAge := int(s.cfg.SessionTokenValidityDuration.Seconds())
	c.SetCookie(common.SessionCookieName, token, maxAge, "/", "", !s.cfg.IsDevelopment(), true)
}

// clearSessionCookie overwrites the client-held cookie with an immediately
// expiring one.
func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetCookie(common.SessionCookieName, "", -1, "/", "", !s.cfg.IsDevelopment(), true)
}
