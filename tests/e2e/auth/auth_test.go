//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegisterAndLogin() {
	s.Run("Normal case: register, login, read own profile, logout", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Name:     "Kari Nordmann",
			Email:    "kari@example.com",
			Password: "password123",
			Role:     "host",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var registered response.RegisterResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &registered))
		require.Equal(t, "host", registered.User.Role)
		require.True(t, registered.User.IsActive)

		token := authtest.LoginUser(t, s.Router, "kari@example.com", "password123")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "kari@example.com")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Error case: the same email cannot register twice", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Kari Nordmann",
			Email:    "kari@example.com",
			Password: "password123",
			Role:     "guest",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Case-folded duplicates collide too
		reqBody.Email = "KARI@example.com"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: nobody can register as admin", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Name:     "Mallory",
			Email:    "mallory@example.com",
			Password: "password123",
			Role:     "admin",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: wrong password and unknown email answer identically", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "known@example.com", "guest")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "known@example.com", Password: "wrongpassword"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
		wrongPasswordBody := w.Body.String()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
		require.JSONEq(t, wrongPasswordBody, w.Body.String())
	})

	s.Run("Error case: protected endpoints reject missing tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
