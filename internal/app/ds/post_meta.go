package ds

// 3. Метаданные записей (ключ-значение)
type PostMeta struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;uniqueIndex:idx_post_meta_key"`
	MetaKey   string `gorm:"type:varchar(191);not null;uniqueIndex:idx_post_meta_key"`
	MetaValue string `gorm:"type:text"`
}

func (PostMeta) TableName() string {
	return "postmeta"
}
