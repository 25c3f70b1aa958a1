package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	_ "wpcopyright/docs"
	"wpcopyright/internal/app/config"
	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"
	"wpcopyright/internal/app/dto"
	"wpcopyright/internal/app/hooks"
	"wpcopyright/internal/app/middleware"
	"wpcopyright/internal/app/redis"
	"wpcopyright/internal/app/repository"
	"wpcopyright/internal/app/role"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	repo   *repository.Repository
	svc    *copyright.Service
	alice  *ds.User
	bob    *ds.User
	posts  []ds.Post
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	// Setup in-memory DB
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	redisClient, err := redis.New(ctx, config.RedisConfig{Host: mr.Host(), Port: port, DialTimeout: time.Second, ReadTimeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := &config.Config{
		SiteName: "Test Blog",
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	env := &testEnv{repo: repo}
	_, err = repo.CreateUser(ctx, "admin", HashPassword("admin-pass"), "Admin", role.Administrator)
	require.NoError(t, err)
	env.alice, err = repo.CreateUser(ctx, "alice", HashPassword("alice-pass"), "Alice", role.Author)
	require.NoError(t, err)
	env.bob, err = repo.CreateUser(ctx, "bob", HashPassword("bob-pass"), "Bob", role.Editor)
	require.NoError(t, err)

	require.NoError(t, repo.SavePostType(ctx, &ds.PostType{Name: "post", Label: "Posts", Public: true}))
	require.NoError(t, repo.SavePostType(ctx, &ds.PostType{Name: "page", Label: "Pages", Public: true}))

	published := time.Date(2015, 5, 1, 0, 0, 0, 0, time.UTC)
	env.posts = []ds.Post{
		{AuthorID: env.alice.ID, PostType: "post", Title: "Alice one", Content: "<p>one</p>", PublishedAt: published},
		{AuthorID: env.alice.ID, PostType: "page", Title: "Alice page", Content: "<p>page</p>", PublishedAt: published},
		{AuthorID: env.bob.ID, PostType: "post", Title: "Bob one", Content: "<p>bob</p>", PublishedAt: published},
	}
	for i := range env.posts {
		require.NoError(t, repo.CreatePost(ctx, &env.posts[i]))
	}

	catalog := copyright.DefaultCatalog()
	_, err = copyright.Activate(ctx, repo, catalog)
	require.NoError(t, err)
	env.svc = copyright.NewService(catalog, repo, cfg.SiteName).
		WithClock(func() time.Time { return time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC) })
	registry := hooks.Register(hooks.NewRegistry(), env.svc, repo)

	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)
	authHandler := NewAuthHandler(repo, redisClient, cfg)
	apiHandler := NewAPIHandler(repo, env.svc, nil, authHandler)
	h := NewHandler(repo, env.svc, registry)

	router := gin.New()
	router.LoadHTMLGlob("../../../templates/*.html")
	h.RegisterRoutes(router, authMiddleware)
	apiHandler.RegisterAPIRoutes(router, authMiddleware)
	env.router = router
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) form(t *testing.T, path, token string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookie, Value: token})
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T, login, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Login: login, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func (e *testEnv) effective(t *testing.T, id uint) string {
	t.Helper()
	got, err := e.svc.Resolver.ResolveEffectiveLicense(context.Background(), id)
	require.NoError(t, err)
	return got
}

func TestPing(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/posts/{id}/license"`)
	assert.Contains(t, w.Body.String(), `"BearerAuth"`)
}

func TestAuth_LoginLogout(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Login: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := env.login(t, "admin", "admin-pass")

	w = env.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"administrator"`)

	w = env.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// токен отозван
	w = env.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_Licenses(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/licenses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LicenseListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, env.svc.Catalog.Len(), resp.Total)
	assert.Equal(t, "wpcopyright_allrights", resp.Licenses[0].ID)
}

func TestAPI_PostLicense(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice", "alice-pass")
	id := env.posts[0].ID
	path := "/api/posts/" + strconv.Itoa(int(id)) + "/license"

	w := env.do(t, http.MethodPut, path, "", dto.PostLicenseRequest{Choice: "wpcopyright_norights"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPut, path, token, dto.PostLicenseRequest{Choice: "gpl"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, path, token, dto.PostLicenseRequest{Choice: "wpcopyright_norights"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PostLicenseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "wpcopyright_norights", resp.Override)
	assert.Equal(t, "No Rights Reserved", resp.OverrideTitle)
	assert.Equal(t, "wpcopyright_norights", resp.Effective)

	w = env.do(t, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, copyright.None, env.effective(t, id))

	w = env.do(t, http.MethodGet, "/api/posts/999/license", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_Bulk(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")

	// по автору: только записи Алисы
	w := env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{
		Scope: "author", Selector: strconv.Itoa(int(env.alice.ID)), Choice: "wpcopyright_norights",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"scope":"author","affected":2}`, w.Body.String())
	assert.Equal(t, "wpcopyright_norights", env.effective(t, env.posts[0].ID))
	assert.Equal(t, "wpcopyright_norights", env.effective(t, env.posts[1].ID))
	assert.Equal(t, copyright.None, env.effective(t, env.posts[2].ID))

	// снять со всех нельзя
	w = env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{Scope: "all", Choice: "none"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// применить "none" по умолчанию нельзя
	w = env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{Scope: "all", Choice: "apply"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// неизвестный тип
	w = env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{Scope: "type", Selector: "revision", Choice: "wpcopyright_allrights"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// по типу: снять лицензию со страниц
	w = env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{Scope: "type", Selector: "page", Choice: "none"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, copyright.None, env.effective(t, env.posts[1].ID))
	assert.Equal(t, "wpcopyright_norights", env.effective(t, env.posts[0].ID))

	// автор без записей
	carol, err := env.repo.CreateUser(context.Background(), "carol", "x", "Carol", role.Contributor)
	require.NoError(t, err)
	w = env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{
		Scope: "author", Selector: strconv.Itoa(int(carol.ID)), Choice: "wpcopyright_allrights",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// обычный автор не может
	w = env.do(t, http.MethodPost, "/api/bulk", env.login(t, "alice", "alice-pass"), dto.BulkApplyRequest{Scope: "all", Choice: "apply"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPI_SettingsAndApplyAll(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")

	w := env.do(t, http.MethodPut, "/api/settings", token, dto.SettingsRequest{
		DefaultChoice:   "wpcopyright_reprinted",
		AppendToContent: true,
		Licenses: map[string]dto.LicenseTextRequest{
			"wpcopyright_custom": {Description: "Mine", Text: "(c) [blog-title]"},
			"unknown":            {Description: "ignored"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "wpcopyright_reprinted", resp.DefaultChoice)
	assert.Equal(t, "Reprinted by Permission", resp.DefaultTitle)
	assert.True(t, resp.AppendToContent)
	assert.Len(t, resp.Licenses, env.svc.Catalog.Len())

	// без переопределений действует лицензия по умолчанию
	assert.Equal(t, "wpcopyright_reprinted", env.effective(t, env.posts[2].ID))

	w = env.do(t, http.MethodPost, "/api/bulk", token, dto.BulkApplyRequest{Scope: "all", Choice: "apply"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"scope":"all","affected":3}`, w.Body.String())

	w = env.do(t, http.MethodPut, "/api/settings", token, dto.SettingsRequest{DefaultChoice: "gpl"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/settings/export", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAPI_BulkEdit(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")

	ids := []string{strconv.Itoa(int(env.posts[0].ID)), "abc", strconv.Itoa(int(env.posts[2].ID)), "-1"}
	w := env.do(t, http.MethodPost, "/api/posts/bulk-edit", token, dto.BulkEditRequest{PostIDs: ids, Choice: "wpcopyright_attribution"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":2}`, w.Body.String())
	assert.Equal(t, "wpcopyright_attribution", env.effective(t, env.posts[0].ID))
	assert.Equal(t, copyright.None, env.effective(t, env.posts[1].ID))

	// пустой выбор ничего не меняет
	w = env.do(t, http.MethodPost, "/api/posts/bulk-edit", token, dto.BulkEditRequest{PostIDs: ids})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":0}`, w.Body.String())
	assert.Equal(t, "wpcopyright_attribution", env.effective(t, env.posts[0].ID))
}

func TestAPI_Widget(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")

	w := env.do(t, http.MethodPut, "/api/widget", token, dto.WidgetRequest{Title: "<em>License</em>"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"License"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/widget", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"License"}`, w.Body.String())
}

func TestPage_Post(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.posts[0].ID

	require.NoError(t, env.repo.SetItemOverride(ctx, id, "wpcopyright_allrights"))
	require.NoError(t, env.repo.SetWidget(ctx, repository.WidgetSettings{Title: "Copyright"}))
	_, err := env.svc.SaveSettings(ctx, copyright.SettingsInput{AppendToContent: true})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/posts/"+strconv.Itoa(int(id)), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<p>one</p><div class=\"copyright-notice\">")
	assert.Contains(t, body, "Copyright &copy; 2015 – 2017 Test Blog All Rights Reserved.")
	assert.Contains(t, body, `<h2 class="widget-title">Copyright</h2>`)
	assert.Equal(t, 2, strings.Count(body, `class="copyright-notice"`))

	w = env.do(t, http.MethodGet, "/posts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/posts/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPage_SettingsForms(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")

	w := env.do(t, http.MethodGet, "/admin/copyright", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/admin/copyright", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Copyright Options")
	assert.Contains(t, w.Body.String(), "Alice (2)")

	// apply при default = none
	w = env.form(t, "/admin/copyright", token, url.Values{"action": {"apply_all"}, "apply_choice": {"apply"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "apply &#34;none&#34; as a choice.")

	// сохранение настроек
	w = env.form(t, "/admin/copyright", token, url.Values{
		"action":                          {"settings"},
		"default_choice":                  {"wpcopyright_allrights"},
		"append_to_content":               {"1"},
		"text[wpcopyright_allrights]":     {"All mine, [blog-title]"},
		"description[wpcopyright_custom]": {"Custom description"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Settings saved.")

	settings, err := env.svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wpcopyright_allrights", settings.Default())
	assert.True(t, settings.AppendToContent)
	assert.Equal(t, "All mine, [blog-title]", settings.Licenses["wpcopyright_allrights"].Text)
	def, _ := env.svc.Catalog.Get("wpcopyright_allrights")
	assert.Equal(t, def.Description, settings.Licenses["wpcopyright_allrights"].Description)

	// сброс одной лицензии
	w = env.form(t, "/admin/copyright", token, url.Values{
		"action":         {"settings"},
		"default_choice": {"wpcopyright_allrights"},
		"reset":          {"wpcopyright_allrights"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	settings, err = env.svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, def.Text, settings.Licenses["wpcopyright_allrights"].Text)
	assert.False(t, settings.AppendToContent)

	// по автору
	w = env.form(t, "/admin/copyright", token, url.Values{
		"action": {"author"}, "author": {strconv.Itoa(int(env.bob.ID))}, "author_choice": {"wpcopyright_reprinted"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Updated 1 posts.")
	assert.Equal(t, "wpcopyright_reprinted", env.effective(t, env.posts[2].ID))

	// неверный автор
	w = env.form(t, "/admin/copyright", token, url.Values{
		"action": {"author"}, "author": {"9999"}, "author_choice": {"wpcopyright_reprinted"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "(validateArg)")

	// по типу
	w = env.form(t, "/admin/copyright", token, url.Values{
		"action": {"type"}, "post_type": {"page"}, "type_choice": {"wpcopyright_norights"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wpcopyright_norights", env.effective(t, env.posts[1].ID))

	// применить ко всем
	w = env.form(t, "/admin/copyright", token, url.Values{"action": {"apply_all"}, "apply_choice": {"apply"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Updated 3 posts.")
	for _, p := range env.posts {
		assert.Equal(t, "wpcopyright_allrights", env.effective(t, p.ID))
	}

	// снять со всех нельзя
	w = env.form(t, "/admin/copyright", token, url.Values{"action": {"apply_all"}, "apply_choice": {"none"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPage_PostsList(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")
	ctx := context.Background()
	require.NoError(t, env.repo.SetItemOverride(ctx, env.posts[0].ID, "wpcopyright_norights"))

	w := env.do(t, http.MethodGet, "/admin/posts?post_type=post", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-choice="wpcopyright_norights">No Rights Reserved</div>`)
	assert.Contains(t, body, `data-choice="none">None</div>`)
	assert.NotContains(t, body, "Alice page")

	// форма записи
	id := strconv.Itoa(int(env.posts[2].ID))
	w = env.form(t, "/admin/posts/"+id+"/copyright", token, url.Values{"wpcopyright_choice": {"wpcopyright_attribution"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "wpcopyright_attribution", env.effective(t, env.posts[2].ID))

	// массовое редактирование
	w = env.form(t, "/admin/posts/bulk-edit", token, url.Values{
		"post_ids":           {strconv.Itoa(int(env.posts[0].ID)), id},
		"wpcopyright_choice": {"none"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, copyright.None, env.effective(t, env.posts[0].ID))
	assert.Equal(t, copyright.None, env.effective(t, env.posts[2].ID))
}

func TestAPI_PostLicense_OwnPostsOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.login(t, "alice", "alice-pass")
	bob := env.login(t, "bob", "bob-pass")
	bobPost := "/api/posts/" + strconv.Itoa(int(env.posts[2].ID)) + "/license"
	alicePost := "/api/posts/" + strconv.Itoa(int(env.posts[0].ID)) + "/license"

	// автор не может менять чужие записи
	w := env.do(t, http.MethodPut, bobPost, alice, dto.PostLicenseRequest{Choice: "wpcopyright_norights"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	_, ok, err := env.repo.GetItemOverride(ctx, env.posts[2].ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, env.repo.SetItemOverride(ctx, env.posts[2].ID, "wpcopyright_custom"))
	w = env.do(t, http.MethodDelete, bobPost, alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "wpcopyright_custom", env.effective(t, env.posts[2].ID))

	// редактор может менять любые записи
	w = env.do(t, http.MethodPut, alicePost, bob, dto.PostLicenseRequest{Choice: "wpcopyright_reprinted"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wpcopyright_reprinted", env.effective(t, env.posts[0].ID))
}

func TestAPI_PostLicense_MissingPost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	token := env.login(t, "admin", "admin-pass")

	w := env.do(t, http.MethodPut, "/api/posts/999999/license", token, dto.PostLicenseRequest{Choice: "wpcopyright_norights"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodDelete, "/api/posts/999999/license", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, "/api/posts/bulk-edit", token, dto.BulkEditRequest{
		PostIDs: []string{"999999", strconv.Itoa(int(env.posts[0].ID))},
		Choice:  "wpcopyright_norights",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	w = env.form(t, "/admin/posts/999999/copyright", token, url.Values{"wpcopyright_choice": {"wpcopyright_norights"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, ok, err := env.repo.GetItemOverride(ctx, 999999)
	require.NoError(t, err)
	assert.False(t, ok, "no metadata for missing posts")
}

func TestAPI_ApplyScopeUnknown(t *testing.T) {
	env := newTestEnv(t)
	h := NewAPIHandler(env.repo, env.svc, nil, nil)

	n, err := h.applyScope(context.Background(), dto.BulkApplyRequest{Scope: "everything", Choice: "wpcopyright_norights"})
	assert.Zero(t, n)
	assert.True(t, copyright.IsValidation(err))
	assert.Equal(t, http.StatusBadRequest, statusFor(err))
}

func TestPage_PostsList_Default(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "admin", "admin-pass")
	ctx := context.Background()
	_, err := env.svc.SaveSettings(ctx, copyright.SettingsInput{DefaultChoice: "wpcopyright_allrights"})
	require.NoError(t, err)
	require.NoError(t, env.repo.SetItemOverride(ctx, env.posts[0].ID, "wpcopyright_norights"))

	w := env.do(t, http.MethodGet, "/admin/posts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-effective="wpcopyright_norights"`)
	assert.Equal(t, 2, strings.Count(body, `data-effective="wpcopyright_allrights"`))
}
