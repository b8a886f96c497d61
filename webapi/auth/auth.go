// Package auth exposes the authentication HTTP routes. The refresh token
// travels in an HTTP-only, same-site cookie; the access token in the
// response body.
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/omaradel/ledgerbook/pkg/config"
	authsvc "github.com/omaradel/ledgerbook/pkg/service/auth"
	"github.com/omaradel/ledgerbook/webapi/common"
)

// Routes registers the auth endpoints:
//   - POST /auth/signup        : create user, set refresh cookie, return access token
//   - POST /auth/login         : verify credentials, set refresh cookie, return access token
//   - POST /auth/refresh-token : rotate the refresh cookie, return a fresh access token
//   - POST /auth/logout        : delete the refresh token and clear the cookie
func Routes(app *fiber.App, svc *authsvc.Service, cfg *config.App) {
	app.Post("/auth/signup", Signup(svc, cfg))
	app.Post("/auth/login", Login(svc, cfg))
	app.Post("/auth/refresh-token", Refresh(svc, cfg))
	app.Post("/auth/logout", Logout(svc, cfg))
}

// Signup returns a handler that registers a user and opens a session.
func Signup(svc *authsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err
		}
		session, err := svc.Signup(c.Context(), input.Username, input.Email, input.Password, c.Get(fiber.HeaderUserAgent))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Signup failed", err)
		}
		setRefreshCookie(c, cfg, session.RefreshToken, session.RefreshExpiresAt)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Signup successful", fiber.Map{
			"token": session.AccessToken,
			"user":  session.User,
		})
	}
}

// Login returns a handler that authenticates by username or email.
func Login(svc *authsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		session, err := svc.Login(c.Context(), input.Identity, input.Password, c.Get(fiber.HeaderUserAgent))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid identity or password", err, "Identity or password is incorrect")
		}
		setRefreshCookie(c, cfg, session.RefreshToken, session.RefreshExpiresAt)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{
			"token": session.AccessToken,
			"user":  session.User,
		})
	}
}

// Refresh returns a handler that rotates the refresh cookie. A rotated or
// expired token is rejected with 401.
func Refresh(svc *authsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presented := c.Cookies(cfg.RefreshToken.CookieName)
		session, err := svc.Refresh(c.Context(), presented, c.Get(fiber.HeaderUserAgent))
		if err != nil {
			clearRefreshCookie(c, cfg)
			return common.ProblemDetailsJSON(c, "Invalid refresh token", err, "Refresh token is invalid or expired")
		}
		setRefreshCookie(c, cfg, session.RefreshToken, session.RefreshExpiresAt)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Token refreshed", fiber.Map{
			"token": session.AccessToken,
		})
	}
}

// Logout returns a handler that deletes the refresh token and clears the
// cookie. It succeeds even when no token is presented.
func Logout(svc *authsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presented := c.Cookies(cfg.RefreshToken.CookieName)
		if err := svc.Logout(c.Context(), presented); err != nil {
			return common.ProblemDetailsJSON(c, "Logout failed", err)
		}
		clearRefreshCookie(c, cfg)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logout successful", nil)
	}
}

func setRefreshCookie(c *fiber.Ctx, cfg *config.App, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.RefreshToken.CookieName,
		Value:    token,
		Expires:  expires,
		Path:     "/auth",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   cfg.Env == "production",
	})
}

func clearRefreshCookie(c *fiber.Ctx, cfg *config.App) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.RefreshToken.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/auth",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   cfg.Env == "production",
	})
}
