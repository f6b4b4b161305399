package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Gender  string `json:"gender"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// jwtSecret fails closed: without JWT_SECRET no token can be verified, so
// every request is rejected rather than accepted under a known default.
func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return []byte(secret), nil
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret()
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS preflight never carries credentials
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("gender", claims.Gender)
		c.Set("isAdmin", claims.IsAdmin)
		c.Next()
	}
}

// OptionalJWTAuth populates the caller identity when a valid token is present
// but never rejects the request. Used on public read endpoints that enrich
// the response for signed-in users.
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			if claims, err := parseToken(tokenString); err == nil {
				c.Set("userId", claims.UserID)
				c.Set("email", claims.Email)
				c.Set("gender", claims.Gender)
				c.Set("isAdmin", claims.IsAdmin)
			}
		}
		c.Next()
	}
}
