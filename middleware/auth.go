package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the signed session token for browser clients.
// API clients may send the same token as a bearer header instead.
const SessionCookie = "watchlist_session"

// LoginPath is where unauthenticated requests get redirected.
const LoginPath = "/api/login"

var jwtSecret string

func SetJWTSecret(secret string) {
	jwtSecret = secret
}

// AuthMiddleware establishes the session identity for protected
// routes. A missing or invalid token redirects to the login page
// instead of failing the request; handlers behind this middleware can
// rely on user_id and email being set in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			redirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			redirectToLogin(c)
			return
		}
		userID, _ := claims["user_id"].(string)
		email, _ := claims["email"].(string)
		if userID == "" {
			redirectToLogin(c)
			return
		}

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, LoginPath)
	c.Abort()
}
