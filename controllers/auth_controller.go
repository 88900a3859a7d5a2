package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/narbehner/Movie-Watchlist/middleware"
	"github.com/narbehner/Movie-Watchlist/models"
	"github.com/narbehner/Movie-Watchlist/services"
)

const sessionCookieMaxAge = 24 * 60 * 60

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": credentialBindingMessage(err)})
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	// Registration does not log the user in; the client is expected to
	// go through the login flow next.
	ctx.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": credentialBindingMessage(err)})
		return
	}

	token, user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	ctx.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"token": token, "id": user.ID, "email": user.Email})
}

// Logout clears the session identity. The theme preference is read
// before the clear and written back after it, so it survives logout.
func (c *AuthController) Logout(ctx *gin.Context) {
	theme := CurrentTheme(ctx)

	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	SetTheme(ctx, theme)

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// credentialBindingMessage turns validator errors on the two credential
// fields into a friendly message, first error only.
func credentialBindingMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" {
				return "Password must be at least 6 characters long"
			}
			return "Password is required"
		}
	}
	return "Invalid input data"
}
