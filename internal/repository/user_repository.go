package repository

import (
	"github.com/akshayk/webapp-backend/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user. Email uniqueness is enforced by the database
// unique index; a duplicate insert returns gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) SetProfilePicKey(userID uint, key string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_pic_key", key).Error
}

func (r *UserRepository) ClearProfilePicKey(userID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_pic_key", nil).Error
}

func (r *UserRepository) SetEmailVerified(userID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("email_verified", true).Error
}
