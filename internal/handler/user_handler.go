package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/akshayk/webapp-backend/internal/models"
	"github.com/akshayk/webapp-backend/internal/service"
	"github.com/akshayk/webapp-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.userService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to create user"))
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) GetSelf(c *fiber.Ctx) error {
	principal := c.Locals("userEmail").(string)

	user, err := h.userService.GetByEmail(principal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load user"))
	}

	return c.JSON(user)
}

func (h *UserHandler) UpdateSelf(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	principal := c.Locals("userEmail").(string)

	if err := h.userService.Update(principal, req); err != nil {
		if errors.Is(err, service.ErrEmailMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to update user"))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) UploadProfilePic(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("profilePic")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing profilePic file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Failed to read profilePic file"))
	}
	defer file.Close()

	principal := c.Locals("userEmail").(string)

	pic, err := h.userService.UploadProfilePic(principal, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, service.ErrProfilePicExists) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to upload profile picture"))
	}

	return c.Status(fiber.StatusCreated).JSON(pic)
}

func (h *UserHandler) DeleteProfilePic(c *fiber.Ctx) error {
	principal := c.Locals("userEmail").(string)

	if err := h.userService.DeleteProfilePic(principal); err != nil {
		if errors.Is(err, service.ErrProfilePicNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete profile picture"))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// MethodNotAllowed backs the explicit negative contracts: HEAD and OPTIONS
// on the account routes always return 405, authenticated or not.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusMethodNotAllowed)
}
