package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Лицензии ============

type LicenseResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Text        string `json:"text"`
}

type LicenseListResponse struct {
	Licenses []LicenseResponse `json:"licenses"`
	Total    int               `json:"total"`
}

// ============ Лицензия записи ============

type PostLicenseResponse struct {
	PostID uint `json:"post_id"`
	// Override: выбор, сохранённый у записи, или "none"
	Override      string `json:"override"`
	OverrideTitle string `json:"override_title"`
	Effective     string `json:"effective"`
}

type PostLicenseRequest struct {
	Choice string `json:"choice" binding:"required"`
}

type BulkEditRequest struct {
	PostIDs []string `json:"post_ids" binding:"required"`
	Choice  string   `json:"choice"`
}

type BulkEditResponse struct {
	Updated int `json:"updated"`
}

// ============ Массовое применение ============

type BulkApplyRequest struct {
	Scope    string `json:"scope" binding:"required,oneof=all author type"`
	Selector string `json:"selector"`
	Choice   string `json:"choice"`
}

type BulkApplyResponse struct {
	Scope    string `json:"scope"`
	Affected int    `json:"affected"`
}

// ============ Настройки ============

type LicenseTextRequest struct {
	Description string `json:"description"`
	Text        string `json:"text"`
}

type SettingsRequest struct {
	DefaultChoice   string                        `json:"default_choice"`
	AppendToContent bool                          `json:"append_to_content"`
	Licenses        map[string]LicenseTextRequest `json:"licenses"`
	Reset           []string                      `json:"reset"`
}

type SettingsResponse struct {
	DefaultChoice   string            `json:"default_choice"`
	DefaultTitle    string            `json:"default_title"`
	AppendToContent bool              `json:"append_to_content"`
	Licenses        []LicenseResponse `json:"licenses"`
}

type ExportResponse struct {
	Object string `json:"object"`
	URL    string `json:"url,omitempty"`
}

// ============ Виджет ============

type WidgetRequest struct {
	Title string `json:"title"`
}

type WidgetResponse struct {
	Title string `json:"title"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	User      UserResponse `json:"user"`
}
