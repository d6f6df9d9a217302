// Package middleware holds the gin middleware around the core: the identity
// provider adapter. User accounts live elsewhere; requests arrive with a
// bearer token whose claims carry the stable numeric user id the core
// treats as an opaque foreign key.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Sunbittern/internal/dto"
)

const (
	ContextUserID  = "user_id"
	ContextIsStaff = "is_staff"
)

// Claims is the token payload issued by the external identity provider.
type Claims struct {
	UserID  uint `json:"user_id"`
	IsStaff bool `json:"is_staff"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and stores the caller's identity in the
// request context.
func Auth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextIsStaff, claims.IsStaff)
		ctx.Next()
	}
}

// RequireStaff gates the admin routes.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool(ContextIsStaff) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Staff access required"})
			return
		}
		ctx.Next()
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(ctx *gin.Context) uint {
	if v, ok := ctx.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
