package middleware

import (
	"context"
	"net/http"
	"strings"

	"wpcopyright/internal/app/config"
	"wpcopyright/internal/app/ds"
	"wpcopyright/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AuthCookie: cookie с токеном для страниц админки
const AuthCookie = "auth_token"

// TokenBlacklist: хранилище отозванных токенов.
// CheckJWTInBlacklist возвращает nil, если токен отозван.
type TokenBlacklist interface {
	CheckJWTInBlacklist(ctx context.Context, token string) error
}

type AuthMiddleware struct {
	Blacklist TokenBlacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist TokenBlacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// TokenFromRequest берёт токен из заголовка Authorization или из cookie
func TokenFromRequest(gCtx *gin.Context) string {
	if jwtStr := gCtx.GetHeader("Authorization"); jwtStr != "" {
		return strings.TrimPrefix(jwtStr, "Bearer ")
	}
	if cookie, err := gCtx.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}

// WithAuthCheck middleware для проверки авторизации с ролями
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		jwtStr := TokenFromRequest(gCtx)
		if jwtStr == "" {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Проверяем токен в blacklist Redis
		if am.Blacklist != nil {
			if err := am.Blacklist.CheckJWTInBlacklist(gCtx.Request.Context(), jwtStr); err == nil {
				gCtx.AbortWithStatus(http.StatusUnauthorized)
				return
			}
		}

		token, err := am.ParseJWTToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(*ds.JWTClaims)
		if !ok || !token.Valid {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			gCtx.AbortWithStatus(http.StatusForbidden)
			return
		}

		setUser(gCtx, claims.UserID, claims.Role)

		gCtx.Next()
	})
}

// ParseJWTToken парсит и валидирует JWT токен
func (am *AuthMiddleware) ParseJWTToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != am.Config.JWT.SigningMethod {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(am.Config.JWT.Token), nil
	})
}

func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
