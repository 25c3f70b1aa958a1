package copyright

import "fmt"

type Scope int

const (
	ScopeAll Scope = iota
	ScopeAuthor
	ScopeType
)

// Criterion выбирает записи для массового применения
type Criterion struct {
	Scope    Scope
	AuthorID uint
	TypeName string
}

func All() Criterion {
	return Criterion{Scope: ScopeAll}
}

func ByAuthor(authorID uint) Criterion {
	return Criterion{Scope: ScopeAuthor, AuthorID: authorID}
}

func ByType(typeName string) Criterion {
	return Criterion{Scope: ScopeType, TypeName: typeName}
}

func (c Criterion) String() string {
	switch c.Scope {
	case ScopeAuthor:
		return fmt.Sprintf("author=%d", c.AuthorID)
	case ScopeType:
		return fmt.Sprintf("type=%s", c.TypeName)
	default:
		return "all"
	}
}
