package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the HTTP surface. Account creation, email
// verification and the health check are public; the self-service routes sit
// behind Basic auth. The HEAD/OPTIONS 405 handlers are registered before
// the auth middleware so they hold regardless of credentials.
func RegisterRoutes(
	app *fiber.App,
	userHandler *UserHandler,
	verificationHandler *VerificationHandler,
	healthHandler *HealthHandler,
	basicAuth fiber.Handler,
) {
	app.Get("/healthz", healthHandler.Check)

	v1 := app.Group("/v1")

	user := v1.Group("/user")
	user.Post("/", userHandler.Create)
	user.Options("/", MethodNotAllowed)
	user.Get("/verify", verificationHandler.VerifyEmail)

	// HEAD must be registered before GET /self: fiber serves HEAD from GET
	// routes otherwise.
	user.Head("/self", MethodNotAllowed)
	user.Options("/self", MethodNotAllowed)

	user.Get("/self", basicAuth, userHandler.GetSelf)
	user.Put("/self", basicAuth, userHandler.UpdateSelf)
	user.Post("/pic", basicAuth, userHandler.UploadProfilePic)
	user.Delete("/pic", basicAuth, userHandler.DeleteProfilePic)
}
