package ds

import (
	"time"

	"gorm.io/datatypes"
)

// 4. Настройки сайта (одна строка на имя настройки, значение в JSON)
type Option struct {
	Name      string         `gorm:"type:varchar(191);primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Option) TableName() string {
	return "options"
}
