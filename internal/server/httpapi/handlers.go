package httpapi

import (
	"errors"
	"net/http"

	"github.com/amankou/farmauth/internal/common"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true})
}

func (s *Server) handleRegister(c *gin.Context) {
	s.logger.Info(c.Request.Context(), "Registration request")

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	account, err := s.accounts.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", account.Username)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Msg:     "registration successful",
		Data:    account,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, "invalid request body"))
		return
	}

	account, token, err := s.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.setSessionCookie(c, token)
	s.logger.Info(c.Request.Context(), "Logged in", "username", account.Username)
	c.JSON(http.StatusOK, ok(gin.H{"user": account, "token": token}))
}

func (s *Server) handleWhoAmI(c *gin.Context) {
	account := c.MustGet(ctxKeyAccount)
	token := c.GetString(ctxKeyToken)

	c.JSON(http.StatusOK, ok(gin.H{"user": account, "token": token}))
}

// handleLogout instructs the client to discard its cookie. There is no
// server-side revocation: a copy of the token captured elsewhere stays
// valid until its natural expiry.
func (s *Server) handleLogout(c *gin.Context) {
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, Response{Success: true})
}

// renderError converts a service error into the response envelope:
// validation failures are 400, authentication failures 401, everything
// else 500 with the underlying error text.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case common.IsValidation(err):
		c.JSON(http.StatusBadRequest, fail(http.StatusBadRequest, err.Error()))
	case errors.Is(err, common.ErrAccountNotFound),
		errors.Is(err, common.ErrInvalidPassword),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, fail(http.StatusUnauthorized, err.Error()))
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, fail(http.StatusInternalServerError, err.Error()))
	}
}
