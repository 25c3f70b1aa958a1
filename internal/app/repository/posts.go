package repository

import (
	"context"
	"errors"
	"fmt"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для записей

// QueryItemIDs возвращает id всех записей по критерию, без пагинации
func (r *Repository) QueryItemIDs(ctx context.Context, c copyright.Criterion) ([]uint, error) {
	query := r.db.WithContext(ctx).Model(&ds.Post{})

	switch c.Scope {
	case copyright.ScopeAuthor:
		query = query.Where("author_id = ?", c.AuthorID)
	case copyright.ScopeType:
		query = query.Where("post_type = ?", c.TypeName)
	case copyright.ScopeAll:
	default:
		return nil, fmt.Errorf("unknown criterion scope %d", c.Scope)
	}

	var ids []uint
	err := query.Order("id").Pluck("id", &ids).Error
	return ids, err
}

// GetPostByID возвращает запись или nil, если её нет
func (r *Repository) GetPostByID(ctx context.Context, id uint) (*ds.Post, error) {
	var post ds.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ItemExists сообщает, есть ли запись с таким id
func (r *Repository) ItemExists(ctx context.Context, itemID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Post{}).Where("id = ?", itemID).Count(&count).Error
	return count > 0, err
}

// ListPosts возвращает записи для списка в админке (новые сначала)
func (r *Repository) ListPosts(ctx context.Context, postType string) ([]ds.Post, error) {
	var posts []ds.Post
	query := r.db.WithContext(ctx).Preload("Author").Order("published_at DESC, id DESC")
	if postType != "" {
		query = query.Where("post_type = ?", postType)
	}
	err := query.Find(&posts).Error
	return posts, err
}

func (r *Repository) CreatePost(ctx context.Context, post *ds.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}
