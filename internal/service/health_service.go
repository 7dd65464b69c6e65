package service

import (
	"gorm.io/gorm"
)

type HealthService struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{
		db: db,
	}
}

// DatabaseConnected issues a trivial round trip against the connection.
// It reports false on any error and never propagates one.
func (s *HealthService) DatabaseConnected() bool {
	var result int
	if err := s.db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return false
	}
	return true
}
