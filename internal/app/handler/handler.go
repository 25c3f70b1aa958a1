package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/hooks"
	"wpcopyright/internal/app/middleware"
	"wpcopyright/internal/app/repository"
	"wpcopyright/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler отдаёт HTML страницы: запись и экраны админки
type Handler struct {
	Repository *repository.Repository
	Service    *copyright.Service
	Hooks      *hooks.Registry
}

func NewHandler(r *repository.Repository, s *copyright.Service, h *hooks.Registry) *Handler {
	return &Handler{Repository: r, Service: s, Hooks: h}
}

// Регистрация статических файлов
func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./resources")
}

// Регистрация маршрутов
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// GET маршруты
	router.GET("/posts/:id", h.GetPost)

	admin := router.Group("/admin")
	admin.Use(authMiddleware.WithAuthCheck(role.Administrator))
	{
		admin.GET("/copyright", h.GetSettingsPage)
		admin.GET("/posts", h.GetPostsPage)

		// POST маршруты
		admin.POST("/copyright", h.PostSettingsPage)
		admin.POST("/posts/:id/copyright", h.SavePostChoice)
		admin.POST("/posts/bulk-edit", h.BulkEditPosts)
	}
}

// Централизованная обработка ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.HTML(errorStatusCode, "error.html", gin.H{
		"status":      errorStatusCode,
		"description": err.Error(),
	})
}

func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid post id %q", ctx.Param("id"))
	}
	return uint(id), nil
}

// 1. Страница одной записи с уведомлением и виджетом
func (h *Handler) GetPost(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	post, err := h.Repository.GetPostByID(ctx.Request.Context(), id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if post == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("post not found"))
		return
	}

	view := hooks.View{PostID: post.ID, Published: post.PublishedAt, Single: true}
	content, err := h.Hooks.FilterContent(ctx.Request.Context(), view, post.Content)
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}
	sidebar, err := h.Hooks.RenderSidebar(ctx.Request.Context(), view, hooks.DefaultWidgetArgs)
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}

	ctx.HTML(http.StatusOK, "post.html", gin.H{
		"siteName": h.Service.SiteName(),
		"post":     post,
		"content":  template.HTML(content),
		"sidebar":  template.HTML(sidebar),
	})
}

// 2. Форма записи: сохранение выбора через обработчики сохранения
func (h *Handler) SavePostChoice(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if err := h.Hooks.SavePost(ctx.Request.Context(), id, ctx.PostForm("wpcopyright_choice")); err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}

	ctx.Redirect(http.StatusFound, "/admin/posts")
}

// 3. Массовое редактирование выбранных записей
func (h *Handler) BulkEditPosts(ctx *gin.Context) {
	n, err := h.Service.Editor.BulkEdit(ctx.Request.Context(), ctx.PostFormArray("post_ids"), ctx.PostForm("wpcopyright_choice"))
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}
	logrus.Infof("bulk edit updated %d posts", n)

	ctx.Redirect(http.StatusFound, "/admin/posts")
}
