package handler

import (
	"wpcopyright/internal/app/middleware"
	"wpcopyright/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	writers := authMiddleware.WithAuthCheck(role.Writers()...)
	admin := authMiddleware.WithAuthCheck(role.Administrator)

	// ============ Лицензии - публично ============
	api.GET("/licenses", h.GetLicenses)

	// ============ Лицензия записи ============
	posts := api.Group("/posts")
	{
		posts.GET("/:id/license", h.GetPostLicense)                // GET сохранённая и действующая
		posts.PUT("/:id/license", writers, h.SetPostLicense)       // PUT форма записи / быстрое редактирование
		posts.DELETE("/:id/license", writers, h.RemovePostLicense) // DELETE снять лицензию
		posts.POST("/bulk-edit", admin, h.BulkEditPosts)           // POST массовое редактирование
	}

	// ============ Настройки - только администратор ============
	settings := api.Group("/settings")
	settings.Use(admin)
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
		settings.POST("/export", h.ExportSettings)
	}
	api.POST("/bulk", admin, h.ApplyBulk)

	widget := api.Group("/widget")
	widget.Use(admin)
	{
		widget.GET("", h.GetWidget)
		widget.PUT("", h.UpdateWidget)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/login", h.AuthHandler.LoginUser)                  // POST аутентификация JWT
		auth.POST("/session-login", h.AuthHandler.SessionLoginUser)   // POST сессионная авторизация (через cookies)
		auth.POST("/session-logout", h.AuthHandler.SessionLogoutUser) // POST выход из сессии (cookies)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)

	// Swagger UI и doc.json
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
