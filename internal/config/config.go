package config

import (
	"os"
)

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional, for S3-compatible stores
	PublicURL       string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
	VerifyURL    string // base URL embedded in verification links
}

type Config struct {
	Port        string
	DatabaseURL string
	S3          S3Config
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.S3.Region = os.Getenv("AWS_REGION")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.S3.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.PublicURL = os.Getenv("S3_PUBLIC_URL")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")
	cfg.Email.VerifyURL = os.Getenv("EMAIL_VERIFY_URL")

	return cfg
}
