package service

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akshayk/webapp-backend/internal/models"
	"github.com/akshayk/webapp-backend/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SentEmail{}))

	return db
}

// fakeStorage records uploads and deletes in memory.
type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(key string, reader io.Reader) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[key]; !ok {
		return errors.New("object not found")
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return fmt.Sprintf("https://cdn.example.com/%s", key)
}

func (f *fakeStorage) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

// fakeMailer records sent verification mails.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []string // recipient emails
	sendErr error
}

func (f *fakeMailer) SendVerificationEmail(to, token string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

type fixture struct {
	userRepo      *repository.UserRepository
	sentEmailRepo *repository.SentEmailRepository
	storage       *fakeStorage
	mailer        *fakeMailer
	users         *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	sentEmailRepo := repository.NewSentEmailRepository(db)
	st := newFakeStorage()
	mailer := &fakeMailer{}

	return &fixture{
		userRepo:      userRepo,
		sentEmailRepo: sentEmailRepo,
		storage:       st,
		mailer:        mailer,
		users:         NewUserService(userRepo, sentEmailRepo, st, mailer, zap.NewNop()),
	}
}
