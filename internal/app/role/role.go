package role

// Role: роль пользователя сайта
type Role int

const (
	Subscriber    Role = iota // 0 только чтение
	Contributor               // 1
	Author                    // 2
	Editor                    // 3
	Administrator             // 4
)

var names = map[Role]string{
	Subscriber:    "subscriber",
	Contributor:   "contributor",
	Author:        "author",
	Editor:        "editor",
	Administrator: "administrator",
}

func (r Role) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return "unknown"
}

// CanWrite: роли, которые могут публиковать записи (их показываем как авторов)
func (r Role) CanWrite() bool {
	return r >= Contributor && r <= Administrator
}

// Writers возвращает все роли с правом публикации
func Writers() []Role {
	return []Role{Contributor, Author, Editor, Administrator}
}
