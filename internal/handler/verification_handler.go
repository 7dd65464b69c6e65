package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akshayk/webapp-backend/internal/service"
)

type VerificationHandler struct {
	verificationService *service.VerificationService
}

func NewVerificationHandler(verificationService *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// VerifyEmail handles GET /v1/user/verify?token=... and responds with plain
// text either way: 200 with the confirmation, 400 with the failure reason.
func (h *VerificationHandler) VerifyEmail(c *fiber.Ctx) error {
	message, err := h.verificationService.VerifyEmail(c.Query("token"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	return c.SendString(message)
}
