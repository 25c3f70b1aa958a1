package handler

import (
	"context"
	"fmt"
	"net/http"

	"wpcopyright/internal/app/copyright"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Действия формы настроек
const (
	actionSettings = "settings"
	actionApplyAll = "apply_all"
	actionAuthor   = "author"
	actionType     = "type"
)

type licenseRow struct {
	ID          string
	Title       string
	Description string
	Text        string
	Default     bool
}

type postRow struct {
	ID             uint
	Title          string
	Author         string
	Type           string
	Override       string
	OverrideTitle  string
	Effective      string
	EffectiveTitle string
}

type flash struct {
	Text  string
	Error bool
}

// GetSettingsPage: экран настроек лицензий
func (h *Handler) GetSettingsPage(ctx *gin.Context) {
	h.renderSettings(ctx, http.StatusOK, nil)
}

// PostSettingsPage обрабатывает все формы экрана настроек
func (h *Handler) PostSettingsPage(ctx *gin.Context) {
	c := ctx.Request.Context()

	var (
		message string
		err     error
	)
	switch ctx.PostForm("action") {
	case actionSettings:
		_, err = h.Service.SaveSettings(c, h.settingsInput(c, ctx))
		message = "Settings saved."

	case actionApplyAll:
		var n int
		n, err = h.Service.ApplyToAll(c, ctx.PostForm("apply_choice"))
		message = fmt.Sprintf("Updated %d posts.", n)

	case actionAuthor:
		var n int
		n, err = h.Service.ApplyBySelector(c, copyright.SelectorAuthor, ctx.PostForm("author"), ctx.PostForm("author_choice"))
		message = fmt.Sprintf("Updated %d posts.", n)

	case actionType:
		var n int
		n, err = h.Service.ApplyBySelector(c, copyright.SelectorType, ctx.PostForm("post_type"), ctx.PostForm("type_choice"))
		message = fmt.Sprintf("Updated %d posts.", n)

	default:
		err = &copyright.ValidationError{Field: "action", Value: ctx.PostForm("action"), Message: "unknown form"}
	}

	if err != nil {
		logrus.Error(err.Error())
		h.renderSettings(ctx, statusFor(err), &flash{Text: adminMessage(err), Error: true})
		return
	}
	h.renderSettings(ctx, http.StatusOK, &flash{Text: message})
}

// settingsInput собирает форму: description[id], text[id], reset[]
func (h *Handler) settingsInput(c context.Context, ctx *gin.Context) copyright.SettingsInput {
	in := copyright.SettingsInput{
		DefaultChoice:   ctx.PostForm("default_choice"),
		AppendToContent: ctx.PostForm("append_to_content") != "",
		Licenses:        map[string]copyright.LicenseText{},
		Reset:           ctx.PostFormArray("reset"),
	}

	current, err := h.Service.Settings(c)
	if err != nil {
		logrus.Warn(err)
	}
	descriptions := ctx.PostFormMap("description")
	texts := ctx.PostFormMap("text")
	for _, id := range h.Service.Catalog.IDs() {
		desc, hasDesc := descriptions[id]
		text, hasText := texts[id]
		if !hasDesc && !hasText {
			continue
		}
		lt, _ := current.TextFor(h.Service.Catalog, id)
		if hasDesc {
			lt.Description = desc
		}
		if hasText {
			lt.Text = text
		}
		in.Licenses[id] = lt
	}
	return in
}

func (h *Handler) renderSettings(ctx *gin.Context, status int, msg *flash) {
	c := ctx.Request.Context()

	settings, err := h.Service.Settings(c)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	authors, err := h.Repository.ListAuthors(c)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	types, err := h.Repository.ListPublicPostTypes(c)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	defs := h.Service.Catalog.All()
	licenses := make([]licenseRow, len(defs))
	for i, def := range defs {
		lt, _ := settings.TextFor(h.Service.Catalog, def.ID)
		licenses[i] = licenseRow{
			ID:          def.ID,
			Title:       def.Title,
			Description: lt.Description,
			Text:        lt.Text,
			Default:     def.ID == settings.Default(),
		}
	}

	ctx.HTML(status, "settings.html", gin.H{
		"siteName":     h.Service.SiteName(),
		"settings":     settings,
		"defaultTitle": h.Service.Catalog.Title(settings.Default()),
		"licenses":     licenses,
		"authors":      authors,
		"types":        types,
		"flash":        msg,
	})
}

// GetPostsPage: список записей с колонкой «Copyright Notice»
func (h *Handler) GetPostsPage(ctx *gin.Context) {
	c := ctx.Request.Context()
	postType := ctx.Query("post_type")

	posts, err := h.Repository.ListPosts(c, postType)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	overrides, err := h.Repository.GetOverrides(c, ids)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	effective, err := h.Service.Resolver.ResolveLoaded(c, ids, overrides)
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}

	rows := make([]postRow, len(posts))
	for i, p := range posts {
		override, ok := overrides[p.ID]
		if !ok {
			override = copyright.None
		}
		rows[i] = postRow{
			ID:             p.ID,
			Title:          p.Title,
			Author:         p.Author.Nickname,
			Type:           p.PostType,
			Override:       override,
			OverrideTitle:  h.Service.Catalog.Title(override),
			Effective:      effective[p.ID],
			EffectiveTitle: h.Service.Catalog.Title(effective[p.ID]),
		}
	}

	ctx.HTML(http.StatusOK, "posts.html", gin.H{
		"siteName": h.Service.SiteName(),
		"postType": postType,
		"posts":    rows,
		"licenses": h.Service.Catalog.All(),
	})
}
