package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"
	"wpcopyright/internal/app/dto"
	"wpcopyright/internal/app/middleware"
	"wpcopyright/internal/app/repository"
	"wpcopyright/internal/app/role"
	"wpcopyright/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	Service     *copyright.Service
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, s *copyright.Service, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Service:     s,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// serviceError пишет ошибку лицензий с подходящим статусом
func (h *APIHandler) serviceError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.Error(err)
	}

	var se *copyright.StorageError
	if errors.As(err, &se) && se.Applied > 0 {
		c.JSON(status, dto.SuccessResponse{
			Status:  "fail",
			Message: err.Error(),
			Data:    dto.BulkApplyResponse{Affected: se.Applied},
		})
		return
	}
	h.errorResponse(c, status, err.Error())
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// canEditPost: редактор и администратор меняют любые записи, остальные только свои
func canEditPost(user middleware.CurrentUser, post *ds.Post) bool {
	return user.Role >= role.Editor || post.AuthorID == user.ID
}

// editablePost загружает запись из пути и проверяет право её менять.
// При отказе ответ уже записан.
func (h *APIHandler) editablePost(c *gin.Context) (*ds.Post, bool) {
	id, ok := parsePostID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID записи")
		return nil, false
	}

	post, err := h.Repository.GetPostByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if post == nil {
		h.errorResponse(c, http.StatusNotFound, "Запись не найдена")
		return nil, false
	}

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		h.errorResponse(c, http.StatusUnauthorized, "Требуется авторизация")
		return nil, false
	}
	if !canEditPost(user, post) {
		h.errorResponse(c, http.StatusForbidden, "Недостаточно прав для изменения записи")
		return nil, false
	}
	return post, true
}

func (h *APIHandler) settingsResponse(s copyright.Settings) dto.SettingsResponse {
	defs := h.Service.Catalog.All()
	licenses := make([]dto.LicenseResponse, len(defs))
	for i, def := range defs {
		lt, _ := s.TextFor(h.Service.Catalog, def.ID)
		licenses[i] = dto.LicenseResponse{
			ID:          def.ID,
			Title:       def.Title,
			Description: lt.Description,
			Text:        lt.Text,
		}
	}
	return dto.SettingsResponse{
		DefaultChoice:   s.Default(),
		DefaultTitle:    h.Service.Catalog.Title(s.Default()),
		AppendToContent: s.AppendToContent,
		Licenses:        licenses,
	}
}

// ============ ЛИЦЕНЗИИ ============

// GetLicenses возвращает таблицу лицензий
// @Summary Список лицензий
// @Description Возвращает лицензии в порядке таблицы
// @Tags Licenses
// @Produce json
// @Success 200 {object} dto.LicenseListResponse
// @Router /api/licenses [get]
func (h *APIHandler) GetLicenses(c *gin.Context) {
	defs := h.Service.Catalog.All()
	licenses := make([]dto.LicenseResponse, len(defs))
	for i, def := range defs {
		licenses[i] = dto.LicenseResponse{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Text:        def.Text,
		}
	}

	c.JSON(http.StatusOK, dto.LicenseListResponse{
		Licenses: licenses,
		Total:    len(licenses),
	})
}

// ============ ЛИЦЕНЗИЯ ЗАПИСИ ============

// GetPostLicense возвращает сохранённую и действующую лицензию записи
// @Summary Лицензия записи
// @Tags Posts
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} dto.PostLicenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/posts/{id}/license [get]
func (h *APIHandler) GetPostLicense(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID записи")
		return
	}

	ctx := c.Request.Context()
	post, err := h.Repository.GetPostByID(ctx, id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	if post == nil {
		h.errorResponse(c, http.StatusNotFound, "Запись не найдена")
		return
	}

	override, found, err := h.Repository.GetItemOverride(ctx, id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		override = copyright.None
	}
	effective, err := h.Service.Resolver.ResolveEffectiveLicense(ctx, id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostLicenseResponse{
		PostID:        id,
		Override:      override,
		OverrideTitle: h.Service.Catalog.Title(override),
		Effective:     effective,
	})
}

// SetPostLicense задаёт лицензию записи ("none" снимает её)
// @Summary Изменение лицензии записи
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID записи"
// @Param request body dto.PostLicenseRequest true "Выбор лицензии"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/posts/{id}/license [put]
func (h *APIHandler) SetPostLicense(c *gin.Context) {
	post, ok := h.editablePost(c)
	if !ok {
		return
	}

	var req dto.PostLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.Editor.SavePost(c.Request.Context(), post.ID, req.Choice); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "лицензия записи сохранена", nil)
}

// RemovePostLicense снимает лицензию записи
// @Summary Удаление лицензии записи
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID записи"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/posts/{id}/license [delete]
func (h *APIHandler) RemovePostLicense(c *gin.Context) {
	post, ok := h.editablePost(c)
	if !ok {
		return
	}

	if err := h.Service.Editor.RemovePost(c.Request.Context(), post.ID, "remove"); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "лицензия записи снята", nil)
}

// BulkEditPosts применяет выбор к списку записей
// @Summary Массовое редактирование
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkEditRequest true "ID записей и выбор"
// @Success 200 {object} dto.BulkEditResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/posts/bulk-edit [post]
func (h *APIHandler) BulkEditPosts(c *gin.Context) {
	var req dto.BulkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.Service.Editor.BulkEdit(c.Request.Context(), req.PostIDs, req.Choice)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkEditResponse{Updated: n})
}

// ============ МАССОВОЕ ПРИМЕНЕНИЕ ============

// ApplyBulk применяет лицензию ко всем записям, автору или типу
// @Summary Массовое применение лицензии
// @Description scope=all применяет лицензию по умолчанию (choice "apply") или снимает ("none");
// @Description scope=author|type берут selector и choice
// @Tags Bulk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkApplyRequest true "Критерий и лицензия"
// @Success 200 {object} dto.BulkApplyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.SuccessResponse
// @Router /api/bulk [post]
func (h *APIHandler) ApplyBulk(c *gin.Context) {
	var req dto.BulkApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.applyScope(c.Request.Context(), req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkApplyResponse{Scope: req.Scope, Affected: n})
}

// applyScope выбирает массовое действие по scope запроса
func (h *APIHandler) applyScope(ctx context.Context, req dto.BulkApplyRequest) (int, error) {
	switch req.Scope {
	case "all":
		return h.Service.ApplyToAll(ctx, req.Choice)
	case "author":
		return h.Service.ApplyBySelector(ctx, copyright.SelectorAuthor, req.Selector, req.Choice)
	case "type":
		return h.Service.ApplyBySelector(ctx, copyright.SelectorType, req.Selector, req.Choice)
	}
	return 0, &copyright.ValidationError{Field: "scope", Value: req.Scope, Message: "expected all, author or type"}
}

// ============ НАСТРОЙКИ ============

// GetSettings возвращает настройки
// @Summary Настройки
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SettingsResponse
// @Router /api/settings [get]
func (h *APIHandler) GetSettings(c *gin.Context) {
	settings, err := h.Service.Settings(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.settingsResponse(settings))
}

// UpdateSettings сохраняет настройки
// @Summary Изменение настроек
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SettingsRequest true "Настройки"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/settings [put]
func (h *APIHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	in := copyright.SettingsInput{
		DefaultChoice:   req.DefaultChoice,
		AppendToContent: req.AppendToContent,
		Licenses:        make(map[string]copyright.LicenseText, len(req.Licenses)),
		Reset:           req.Reset,
	}
	for id, lt := range req.Licenses {
		in.Licenses[id] = copyright.LicenseText{Description: lt.Description, Text: lt.Text}
	}

	settings, err := h.Service.SaveSettings(c.Request.Context(), in)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.settingsResponse(settings))
}

// ExportSettings выгружает снимок настроек в MinIO
// @Summary Выгрузка настроек
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.ExportResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/settings/export [post]
func (h *APIHandler) ExportSettings(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "объектное хранилище не настроено")
		return
	}

	settings, err := h.Service.Settings(c.Request.Context())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	export, err := h.MinIOClient.ExportSettings(c.Request.Context(), settings)
	if err != nil {
		logrus.Error("Error exporting settings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка выгрузки настроек")
		return
	}

	c.JSON(http.StatusCreated, dto.ExportResponse{Object: export.Object, URL: export.URL})
}

// ============ ВИДЖЕТ ============

// GetWidget возвращает заголовок виджета
// @Summary Настройки виджета
// @Tags Widget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.WidgetResponse
// @Router /api/widget [get]
func (h *APIHandler) GetWidget(c *gin.Context) {
	w, err := h.Repository.GetWidget(c.Request.Context())
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.WidgetResponse{Title: w.Title})
}

// UpdateWidget сохраняет заголовок виджета без тегов
// @Summary Изменение виджета
// @Tags Widget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WidgetRequest true "Заголовок"
// @Success 200 {object} dto.WidgetResponse
// @Router /api/widget [put]
func (h *APIHandler) UpdateWidget(c *gin.Context) {
	var req dto.WidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	w := repository.WidgetSettings{Title: copyright.SanitizeText(req.Title)}
	if err := h.Repository.SetWidget(c.Request.Context(), w); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.WidgetResponse{Title: w.Title})
}
