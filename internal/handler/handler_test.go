package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akshayk/webapp-backend/internal/middleware"
	"github.com/akshayk/webapp-backend/internal/models"
	"github.com/akshayk/webapp-backend/internal/repository"
	"github.com/akshayk/webapp-backend/internal/service"
	"github.com/akshayk/webapp-backend/pkg/utils"
)

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeStorage) Upload(key string, reader io.Reader) error {
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
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[key]; !ok {
		return errors.New("object not found")
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeMailer struct{}

func (f *fakeMailer) SendVerificationEmail(to, token string) error { return nil }

type testEnv struct {
	app           *fiber.App
	db            *gorm.DB
	userRepo      *repository.UserRepository
	sentEmailRepo *repository.SentEmailRepository
	storage       *fakeStorage
}

func newTestEnv(t *testing.T) *testEnv {
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

	userRepo := repository.NewUserRepository(db)
	sentEmailRepo := repository.NewSentEmailRepository(db)
	st := &fakeStorage{objects: map[string][]byte{}}

	userService := service.NewUserService(userRepo, sentEmailRepo, st, &fakeMailer{}, zap.NewNop())
	verificationService := service.NewVerificationService(sentEmailRepo, userRepo)
	healthService := service.NewHealthService(db)

	app := fiber.New()
	RegisterRoutes(app,
		NewUserHandler(userService, utils.NewValidator()),
		NewVerificationHandler(verificationService),
		NewHealthHandler(healthService),
		middleware.BasicAuth(userRepo),
	)

	return &testEnv{
		app:           app,
		db:            db,
		userRepo:      userRepo,
		sentEmailRepo: sentEmailRepo,
		storage:       st,
	}
}

func basicAuth(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) createUser(t *testing.T, email, password string) models.UserResponse {
	t.Helper()
	resp := e.do(t, jsonRequest(http.MethodPost, "/v1/user", models.CreateUserRequest{
		Email:     email,
		Password:  password,
		FirstName: "Jane",
		LastName:  "Doe",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	return user
}

func multipartPicRequest(t *testing.T, field, filename, auth string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/v1/user/pic", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", auth)
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func plainRequest(method, target string) *http.Request {
	req, _ := http.NewRequest(method, target, nil)
	return req
}

func authedRequest(method, target, auth string) *http.Request {
	req, _ := http.NewRequest(method, target, nil)
	req.Header.Set("Authorization", auth)
	return req
}
