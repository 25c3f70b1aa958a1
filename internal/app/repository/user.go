package repository

import (
	"context"
	"errors"

	"wpcopyright/internal/app/ds"
	"wpcopyright/internal/app/role"

	"gorm.io/gorm"
)

// AuthorStat: автор и количество его записей
type AuthorStat struct {
	ID        uint
	Login     string
	Nickname  string
	PostCount int64
}

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(ctx context.Context, login string) (bool, error) {
	_, err := r.GetUserByLogin(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *Repository) CreateUser(ctx context.Context, login, password, nickname string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: password,
		Nickname: nickname,
		Role:     int(userRole),
	}

	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListAuthors: пользователи с правом публикации, по убыванию числа записей
func (r *Repository) ListAuthors(ctx context.Context) ([]AuthorStat, error) {
	writers := role.Writers()
	roles := make([]int, len(writers))
	for i, w := range writers {
		roles[i] = int(w)
	}

	var stats []AuthorStat
	err := r.db.WithContext(ctx).Model(&ds.User{}).
		Select("users.id AS id, users.login AS login, users.nickname AS nickname, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.author_id = users.id").
		Where("users.role IN ?", roles).
		Group("users.id, users.login, users.nickname").
		Order("post_count DESC, users.id").
		Scan(&stats).Error
	return stats, err
}

// CurrentAuthorIDs: id авторов для проверки формы
func (r *Repository) CurrentAuthorIDs(ctx context.Context) ([]uint, error) {
	stats, err := r.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(stats))
	for i, s := range stats {
		ids[i] = s.ID
	}
	return ids, nil
}
