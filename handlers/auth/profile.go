package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uniscout/uniscout-api/model"
	"github.com/uniscout/uniscout-api/utils/middleware"
	"github.com/uniscout/uniscout-api/utils/response"
	"github.com/uniscout/uniscout-api/utils/validation"
)

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name          string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Country       string `json:"country,omitempty" validate:"omitempty,max=100"`
	IntendedMajor string `json:"intended_major,omitempty" validate:"omitempty,max=255"`
}

// GetProfile retrieves the current user's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var user model.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, newUserResponse(&user))
}

// UpdateProfile updates the current user's profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequestWithDetails(c, "Invalid profile data", validation.ErrorDetails(err))
	}

	var user model.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	if req.Name != "" {
		user.Name = validation.SanitizeString(req.Name)
	}
	if req.Country != "" {
		user.Country = validation.SanitizeString(req.Country)
	}
	if req.IntendedMajor != "" {
		user.IntendedMajor = validation.SanitizeString(req.IntendedMajor)
	}

	if err := h.db.Save(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, newUserResponse(&user))
}
