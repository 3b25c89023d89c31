package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lens/config"
	httpmiddleware "lens/internal/delivery/http/middleware"
	"lens/internal/delivery/http/validator"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase is a hand-rolled AuthUsecase double for handler tests.
type stubAuthUsecase struct {
	signUpOutput *usecase.SignUpOutput
	signUpErr    error
	signInOutput *usecase.SignInOutput
	signInErr    error
	refreshPair  *usecase.TokenPair
	refreshErr   error
	identity     *usecase.Identity
	checkErr     error

	signedOutWith string
}

func (s *stubAuthUsecase) SignUp(context.Context, usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	return s.signUpOutput, s.signUpErr
}

func (s *stubAuthUsecase) SignIn(context.Context, usecase.SignInInput) (*usecase.SignInOutput, error) {
	return s.signInOutput, s.signInErr
}

func (s *stubAuthUsecase) Refresh(_ context.Context, _ string) (*usecase.TokenPair, error) {
	return s.refreshPair, s.refreshErr
}

func (s *stubAuthUsecase) SignOut(_ context.Context, refreshToken string) {
	s.signedOutWith = refreshToken
}

func (s *stubAuthUsecase) Check(context.Context, string) (*usecase.Identity, error) {
	return s.identity, s.checkErr
}

func (s *stubAuthUsecase) SignOutAll(context.Context, uuid.UUID) error {
	return nil
}

func newAuthTestServer(t *testing.T, uc usecase.AuthUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, &config.Config{}, logger)
	e.POST("/auth/sign-up", h.SignUp)
	e.POST("/auth/sign-in", h.SignIn)
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/sign-out", h.SignOut)
	e.GET("/auth/check", h.Check)

	return e
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_SignIn_SetsRefreshCookie(t *testing.T) {
	uc := &stubAuthUsecase{
		signInOutput: &usecase.SignInOutput{
			Tokens: &usecase.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				RefreshTTL:   20 * time.Minute,
			},
		},
	}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in",
		strings.NewReader(`{"email":"user@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	// The refresh token travels only in the cookie, never in the body.
	assert.NotContains(t, rec.Body.String(), "refresh-token")

	cookie := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.Equal(t, "/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, int((20 * time.Minute).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	uc := &stubAuthUsecase{signInErr: domainerrors.ErrInvalidCredentials}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in",
		strings.NewReader(`{"email":"user@example.com","password":"wrong-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_SignUp_Created(t *testing.T) {
	uc := &stubAuthUsecase{
		signUpOutput: &usecase.SignUpOutput{
			Tokens: &usecase.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				RefreshTTL:   20 * time.Minute,
			},
		},
	}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up",
		strings.NewReader(`{"email":"new@example.com","password":"password123","name":"New User"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, findCookie(t, rec, "refresh_token"))
}

func TestAuthHandler_SignUp_DuplicateEmailConflict(t *testing.T) {
	uc := &stubAuthUsecase{signUpErr: domainerrors.ErrEmailAlreadyRegistered}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up",
		strings.NewReader(`{"email":"taken@example.com","password":"password123","name":"Dup"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAuthHandler_SignUp_ValidationFailure(t *testing.T) {
	e := newAuthTestServer(t, &stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up",
		strings.NewReader(`{"email":"not-an-email","password":"short","name":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Refresh_RotatesCookie(t *testing.T) {
	uc := &stubAuthUsecase{
		refreshPair: &usecase.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			RefreshTTL:   30 * 24 * time.Hour,
		},
	}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")

	cookie := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "new-refresh", cookie.Value)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Refresh_MissingCookieUnauthorized(t *testing.T) {
	e := newAuthTestServer(t, &stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh_StaleTokenUnauthorized(t *testing.T) {
	uc := &stubAuthUsecase{refreshErr: domainerrors.ErrUnauthorized}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stale-refresh"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_SignOut_AlwaysSucceedsAndClearsCookie(t *testing.T) {
	t.Run("with cookie", func(t *testing.T) {
		uc := &stubAuthUsecase{}
		e := newAuthTestServer(t, uc)

		req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh-token"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "refresh-token", uc.signedOutWith)

		cookie := findCookie(t, rec, "refresh_token")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("without cookie", func(t *testing.T) {
		uc := &stubAuthUsecase{}
		e := newAuthTestServer(t, uc)

		req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, uc.signedOutWith)
		require.NotNil(t, findCookie(t, rec, "refresh_token"))
	})
}

func TestAuthHandler_Check(t *testing.T) {
	userID := uuid.New()
	uc := &stubAuthUsecase{
		identity: &usecase.Identity{UserID: userID, Email: "user@example.com"},
	}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "user@example.com")
}

func TestAuthHandler_Check_RevokedUnauthorized(t *testing.T) {
	uc := &stubAuthUsecase{checkErr: domainerrors.ErrUnauthorized}
	e := newAuthTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "revoked"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
