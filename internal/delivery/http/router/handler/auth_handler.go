// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lens/config"
	deliverycontext "lens/internal/delivery/context"
	"lens/internal/delivery/http/response"
	domainerrors "lens/internal/domain/errors"
	"lens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is the cookie carrying the refresh token. The cookie is
// scoped to the auth prefix so it never rides along on protected API calls.
const refreshCookieName = "refresh_token"

const authCookiePath = "/auth"

// AuthHandler holds dependencies for the session-lifecycle handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	cookieDomain string
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	cookieDomain := ""
	if cfg.Auth != nil {
		cookieDomain = cfg.Auth.CookieDomain
	}

	return &AuthHandler{
		uc:           uc,
		cookieDomain: cookieDomain,
		logger:       logger,
	}
}

// signUpRequest is the sign-up request body.
type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
}

// signInRequest is the sign-in request body.
type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// tokenResponse carries the access token to the caller. The refresh token
// travels only in the cookie.
type tokenResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *userResponse `json:"user,omitempty"`
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.Tokens.RefreshToken, output.Tokens.RefreshTTL)

	return response.Success(c, http.StatusCreated, tokenResponse{
		AccessToken: output.Tokens.AccessToken,
		User:        toUserResponse(output.User),
	}, "Account created")
}

// SignIn handles the credential sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember,
		IP:       c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.Tokens.RefreshToken, output.Tokens.RefreshTTL)

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.Tokens.AccessToken,
		User:        toUserResponse(output.User),
	}, "Signed in")
}

// Refresh rotates the session behind the refresh cookie and issues a new
// token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthorized
	}

	tokens, err := h.uc.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, tokens.RefreshToken, tokens.RefreshTTL)

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: tokens.AccessToken,
	}, "Token refreshed")
}

// SignOut ends the session behind the refresh cookie. It always reports
// success and always clears the cookie, whatever the backend state.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		h.uc.SignOut(c.Request().Context(), cookie.Value)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// Check validates the refresh cookie without rotating and reports the
// authenticated identity.
func (h *AuthHandler) Check(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthorized
	}

	identity, err := h.uc.Check(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":    identity.UserID,
		"email": identity.Email,
	}, "Authenticated")
}

// SignOutAll revokes every session of the bearer-authenticated user.
func (h *AuthHandler) SignOutAll(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.uc.SignOutAll(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "All sessions revoked")
}

// setRefreshCookie installs the refresh token with max-age matching the
// session's expiry tier.
func (h *AuthHandler) setRefreshCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     authCookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     authCookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
