package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Theme preference is presentation state only: it lives in its own
// cookie, is never persisted to the store, and is readable without a
// session identity.
const (
	ThemeCookie = "theme"
	ThemeLight  = "light"
	ThemeDark   = "dark"
	themeMaxAge = 365 * 24 * 60 * 60
)

// CurrentTheme reads the theme cookie, defaulting to light.
func CurrentTheme(ctx *gin.Context) string {
	theme, err := ctx.Cookie(ThemeCookie)
	if err != nil || theme != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func SetTheme(ctx *gin.Context, theme string) {
	ctx.SetCookie(ThemeCookie, theme, themeMaxAge, "/", "", false, false)
}

// ToggleTheme flips between the two themes. When the client passes a
// current_page query parameter the browser is sent back there, the way
// a theme switch on a rendered page works; otherwise the new theme is
// returned as JSON.
func ToggleTheme(ctx *gin.Context) {
	theme := ThemeDark
	if CurrentTheme(ctx) == ThemeDark {
		theme = ThemeLight
	}
	SetTheme(ctx, theme)

	if page := ctx.Query("current_page"); page != "" {
		ctx.Redirect(http.StatusSeeOther, page)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"theme": theme})
}
