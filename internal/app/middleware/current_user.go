package middleware

import (
	"wpcopyright/internal/app/role"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// CurrentUser: пользователь, прошедший проверку токена
type CurrentUser struct {
	ID   uint
	Role role.Role
}

func setUser(c *gin.Context, id uint, r role.Role) {
	c.Set(userIDKey, id)
	c.Set(userRoleKey, r)
}

// GetUserFromContext извлекает пользователя из контекста
func GetUserFromContext(c *gin.Context) (CurrentUser, bool) {
	rawID, exists := c.Get(userIDKey)
	if !exists {
		return CurrentUser{}, false
	}
	id, ok := rawID.(uint)
	if !ok {
		return CurrentUser{}, false
	}
	r, _ := c.Get(userRoleKey)
	userRole, _ := r.(role.Role)
	return CurrentUser{ID: id, Role: userRole}, true
}
