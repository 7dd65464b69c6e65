package repository

import (
	"github.com/akshayk/webapp-backend/internal/models"
	"gorm.io/gorm"
)

type SentEmailRepository struct {
	db *gorm.DB
}

func NewSentEmailRepository(db *gorm.DB) *SentEmailRepository {
	return &SentEmailRepository{
		db: db,
	}
}

func (r *SentEmailRepository) Create(sentEmail *models.SentEmail) error {
	return r.db.Create(sentEmail).Error
}

func (r *SentEmailRepository) GetByToken(token string) (*models.SentEmail, error) {
	var sentEmail models.SentEmail
	err := r.db.Where("token = ?", token).First(&sentEmail).Error
	if err != nil {
		return nil, err
	}
	return &sentEmail, nil
}

func (r *SentEmailRepository) MarkVerified(id uint) error {
	return r.db.Model(&models.SentEmail{}).Where("id = ?", id).
		Update("status", models.EmailStatusVerified).Error
}
