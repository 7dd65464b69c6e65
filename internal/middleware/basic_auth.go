package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/akshayk/webapp-backend/internal/models"
	"github.com/akshayk/webapp-backend/internal/repository"
	"github.com/akshayk/webapp-backend/pkg/bcrypt"
)

// BasicAuth authenticates every request against the account store. There are
// no sessions or tokens; each request carries the credentials again. The
// authenticated email is stored in c.Locals("userEmail").
func BasicAuth(userRepo *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Basic ") {
			return unauthorized(c)
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
		if err != nil {
			return unauthorized(c)
		}

		email, password, found := strings.Cut(string(decoded), ":")
		if !found {
			return unauthorized(c)
		}

		user, err := userRepo.GetByEmail(email)
		if err != nil {
			return unauthorized(c)
		}

		if err := bcrypt.ComparePassword(user.Password, password); err != nil {
			return unauthorized(c)
		}

		c.Locals("userEmail", user.Email)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email or password"))
}
