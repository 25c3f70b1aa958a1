package ds

import "time"

// 1. Таблица записей (посты, страницы и другие типы)
type Post struct {
	ID          uint      `gorm:"primaryKey"`
	AuthorID    uint      `gorm:"not null;index"`
	PostType    string    `gorm:"type:varchar(20);not null;default:'post';index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'publish'"` // publish, draft, private
	Title       string    `gorm:"type:text"`
	Content     string    `gorm:"type:text"`
	PublishedAt time.Time `gorm:"not null"`

	Author User `gorm:"foreignKey:AuthorID"`
}

func (Post) TableName() string {
	return "posts"
}
