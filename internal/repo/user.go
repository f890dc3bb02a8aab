package repo

import (
	"context"

	"github.com/Skotchmaster/market_items/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = 0
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrUserAlreadyExist
		}
		return err
	}
	return nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UpdateUser replaces name, email and password hash. A missing id is not an error.
func (r *GormRepo) UpdateUser(ctx context.Context, id int, u *models.User) error {
	row := *u
	row.ID = 0
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Select("name", "email", "password_hash").
		Updates(&row).Error
	if isDuplicateKey(err) {
		return ErrUserAlreadyExist
	}
	return err
}

func (r *GormRepo) DeleteUser(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error
}
