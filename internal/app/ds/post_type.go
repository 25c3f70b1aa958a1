package ds

// 2. Типы записей сайта
type PostType struct {
	Name   string `gorm:"type:varchar(20);primaryKey"`
	Label  string `gorm:"type:varchar(100);not null"`
	Public bool   `gorm:"type:boolean;not null"`
}

func (PostType) TableName() string {
	return "post_types"
}
