package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akshayk/webapp-backend/internal/models"
	"github.com/akshayk/webapp-backend/internal/repository"
	"github.com/akshayk/webapp-backend/pkg/bcrypt"
	"github.com/akshayk/webapp-backend/pkg/storage"
)

// Mailer sends the verification mail issued at registration.
type Mailer interface {
	SendVerificationEmail(to, token string) error
}

type UserService struct {
	userRepo      *repository.UserRepository
	sentEmailRepo *repository.SentEmailRepository
	storage       storage.ObjectStorage
	mailer        Mailer
	logger        *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	sentEmailRepo *repository.SentEmailRepository,
	objectStorage storage.ObjectStorage,
	mailer Mailer,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		sentEmailRepo: sentEmailRepo,
		storage:       objectStorage,
		mailer:        mailer,
		logger:        logger,
	}
}

// Register creates a new account and issues a verification token. The email
// uniqueness check is left to the database index so concurrent registrations
// cannot race an application-level existence check.
func (s *UserService) Register(req models.CreateUserRequest) (*models.UserResponse, error) {
	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.sendVerificationEmail(user.Email)

	resp := models.NewUserResponse(user)
	return &resp, nil
}

// sendVerificationEmail persists the token and mails the link. Delivery
// failures are logged, not surfaced: the account is already created and the
// token row makes /v1/user/verify usable regardless.
func (s *UserService) sendVerificationEmail(email string) {
	sentEmail := &models.SentEmail{
		Token:  uuid.NewString(),
		Email:  email,
		SentAt: time.Now(),
		Status: models.EmailStatusPending,
	}

	if err := s.sentEmailRepo.Create(sentEmail); err != nil {
		s.logger.Error("failed to persist verification token",
			zap.String("email", email), zap.Error(err))
		return
	}

	if err := s.mailer.SendVerificationEmail(email, sentEmail.Token); err != nil {
		s.logger.Warn("failed to send verification email",
			zap.String("email", email), zap.Error(err))
	}
}

func (s *UserService) GetByEmail(email string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	resp := models.NewUserResponse(user)
	return &resp, nil
}

// Update replaces the caller's names and password. The request must name the
// principal's own email; nothing is written otherwise. The password is
// re-hashed unconditionally.
func (s *UserService) Update(principal string, req models.UpdateUserRequest) error {
	if req.Email != principal {
		return ErrEmailMismatch
	}

	user, err := s.userRepo.GetByEmail(principal)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Password = hashedPassword

	return s.userRepo.Update(user)
}

// UploadProfilePic stores the picture under a key derived from the user id
// and filename. Only one picture may exist per user; a second upload is
// rejected before anything is written to the object store.
func (s *UserService) UploadProfilePic(principal, fileName string, file io.Reader) (*models.ProfilePicResponse, error) {
	user, err := s.userRepo.GetByEmail(principal)
	if err != nil {
		return nil, err
	}

	if user.ProfilePicKey != nil {
		return nil, ErrProfilePicExists
	}

	key := fmt.Sprintf("profile-pictures/%d/%s", user.ID, fileName)

	if err := s.storage.Upload(key, file); err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	if err := s.userRepo.SetProfilePicKey(user.ID, key); err != nil {
		return nil, err
	}

	return &models.ProfilePicResponse{
		FileName:   fileName,
		ID:         uuid.NewString(),
		URL:        s.storage.PublicURL(key),
		UploadDate: time.Now().Format("2006-01-02"),
		UserID:     strconv.FormatUint(uint64(user.ID), 10),
	}, nil
}

func (s *UserService) DeleteProfilePic(principal string) error {
	user, err := s.userRepo.GetByEmail(principal)
	if err != nil {
		return err
	}

	if user.ProfilePicKey == nil {
		return ErrProfilePicNotFound
	}

	if err := s.storage.Delete(*user.ProfilePicKey); err != nil {
		return fmt.Errorf("failed to delete profile picture: %w", err)
	}

	return s.userRepo.ClearProfilePicKey(user.ID)
}
