package ds

// 5. Таблица пользователей
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     int    `gorm:"type:int;default:0;not null"` // role.Role
	Nickname string `gorm:"type:varchar(100)"`
	Email    string `gorm:"type:varchar(100)"`
}

func (User) TableName() string {
	return "users"
}
