package logger

import (
	"go.uber.org/zap"
)

// New builds the production zap logger used across the service.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}
