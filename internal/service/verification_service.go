package service

import (
	"time"

	"github.com/akshayk/webapp-backend/internal/models"
	"github.com/akshayk/webapp-backend/internal/repository"
)

// TokenValidity is how long a verification token stays usable, measured
// from issuance. A token aged exactly TokenValidity is already expired.
const TokenValidity = 120 * time.Second

type VerificationService struct {
	sentEmailRepo *repository.SentEmailRepository
	userRepo      *repository.UserRepository
}

func NewVerificationService(
	sentEmailRepo *repository.SentEmailRepository,
	userRepo *repository.UserRepository,
) *VerificationService {
	return &VerificationService{
		sentEmailRepo: sentEmailRepo,
		userRepo:      userRepo,
	}
}

// VerifyEmail consumes a one-time token. A token that was already verified
// is treated the same as an unknown one.
func (s *VerificationService) VerifyEmail(token string) (string, error) {
	sentEmail, err := s.sentEmailRepo.GetByToken(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	if sentEmail.Status == models.EmailStatusVerified {
		return "", ErrInvalidToken
	}

	if time.Since(sentEmail.SentAt) >= TokenValidity {
		return "", ErrTokenExpired
	}

	user, err := s.userRepo.GetByEmail(sentEmail.Email)
	if err != nil {
		return "", ErrUserNotFound
	}

	if err := s.userRepo.SetEmailVerified(user.ID); err != nil {
		return "", err
	}

	if err := s.sentEmailRepo.MarkVerified(sentEmail.ID); err != nil {
		return "", err
	}

	return "Email successfully verified!", nil
}
