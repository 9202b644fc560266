package savedschool

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscout/uniscout-api/model"
	"github.com/uniscout/uniscout-api/services"
	"github.com/uniscout/uniscout-api/utils/middleware"
	"github.com/uniscout/uniscout-api/utils/response"
	"github.com/uniscout/uniscout-api/utils/validation"
	"gorm.io/datatypes"
)

// SavedSchoolHandler handles saved-school list requests. Every route
// requires authentication; the router mounts the auth middleware.
type SavedSchoolHandler struct {
	service   *services.SavedSchoolService
	validator *validation.Validator
}

// NewSavedSchoolHandler creates a new saved school handler
func NewSavedSchoolHandler(service *services.SavedSchoolService) *SavedSchoolHandler {
	return &SavedSchoolHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateSavedSchoolRequest represents the request body for saving a school
type CreateSavedSchoolRequest struct {
	InstitutionID uint     `json:"institution_id" validate:"required,gt=0"`
	Notes         string   `json:"notes" validate:"omitempty,max=2000"`
	Tags          []string `json:"tags" validate:"omitempty,dive,max=100"`
}

// UpdateSavedSchoolRequest represents the request body for editing a saved school
type UpdateSavedSchoolRequest struct {
	Notes string   `json:"notes" validate:"omitempty,max=2000"`
	Tags  []string `json:"tags" validate:"omitempty,dive,max=100"`
}

// ToggleRequest represents the request body for the save/unsave toggle
type ToggleRequest struct {
	InstitutionID uint `json:"institution_id" validate:"required,gt=0"`
}

// List handles GET /api/v1/saved-schools
func (h *SavedSchoolHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 100 || offset < 0 {
		return response.BadRequest(c, "Invalid pagination parameters")
	}

	records, total, err := h.service.List(c.Context(), userID, limit, offset)
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch saved schools", err)
	}

	return c.Status(fiber.StatusOK).JSON(response.NewEnvelope(records, total, offset, limit))
}

// Get handles GET /api/v1/saved-schools/:id
func (h *SavedSchoolHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid saved school ID")
	}

	record, err := h.service.Get(c.Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSavedSchoolNotFound) {
			return response.NotFound(c, "Saved school not found")
		}
		return response.InternalServerErrorWithDetails(c, "Failed to fetch saved school", err)
	}

	return response.Success(c, record)
}

// Create handles POST /api/v1/saved-schools
func (h *SavedSchoolHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req CreateSavedSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequestWithDetails(c, "Invalid saved school data", validation.ErrorDetails(err))
	}

	tags, err := tagsJSON(req.Tags)
	if err != nil {
		return response.BadRequest(c, "Invalid tags")
	}

	record := model.SavedSchool{
		UserID:        userID,
		InstitutionID: req.InstitutionID,
		Notes:         validation.SanitizeString(req.Notes),
		Tags:          tags,
	}

	if err := h.service.Create(c.Context(), &record); err != nil {
		switch {
		case errors.Is(err, services.ErrInstitutionNotFound):
			return response.NotFound(c, "Institution not found")
		case errors.Is(err, services.ErrAlreadySaved):
			return response.Conflict(c, "Institution already saved")
		case errors.Is(err, services.ErrSaveLimitReached):
			return response.Conflict(c, "You can only save up to 20 schools")
		default:
			return response.InternalServerErrorWithDetails(c, "Failed to save school", err)
		}
	}

	return response.Created(c, "School saved successfully", record)
}

// Toggle handles POST /api/v1/saved-schools/toggle
func (h *SavedSchoolHandler) Toggle(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequestWithDetails(c, "Invalid institution ID", validation.ErrorDetails(err))
	}

	saved, err := h.service.Toggle(c.Context(), userID, req.InstitutionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInstitutionNotFound):
			return response.NotFound(c, "Institution not found")
		case errors.Is(err, services.ErrSaveLimitReached):
			return response.Conflict(c, "You can only save up to 20 schools")
		default:
			return response.InternalServerErrorWithDetails(c, "Failed to toggle saved school", err)
		}
	}

	return response.Success(c, fiber.Map{"saved": saved})
}

// Update handles PUT /api/v1/saved-schools/:id
func (h *SavedSchoolHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid saved school ID")
	}

	var req UpdateSavedSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequestWithDetails(c, "Invalid saved school data", validation.ErrorDetails(err))
	}

	tags, err := tagsJSON(req.Tags)
	if err != nil {
		return response.BadRequest(c, "Invalid tags")
	}

	record := model.SavedSchool{
		ID:     uint(id),
		UserID: userID,
		Notes:  validation.SanitizeString(req.Notes),
		Tags:   tags,
	}

	if err := h.service.Update(c.Context(), &record); err != nil {
		if errors.Is(err, services.ErrSavedSchoolNotFound) {
			return response.NotFound(c, "Saved school not found")
		}
		return response.InternalServerErrorWithDetails(c, "Failed to update saved school", err)
	}

	return response.SuccessWithMessage(c, "Saved school updated successfully", record)
}

// Delete handles DELETE /api/v1/saved-schools/:id
func (h *SavedSchoolHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid saved school ID")
	}

	if err := h.service.Delete(c.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrSavedSchoolNotFound) {
			return response.NotFound(c, "Saved school not found")
		}
		return response.InternalServerErrorWithDetails(c, "Failed to delete saved school", err)
	}

	return response.SuccessWithMessage(c, "Saved school removed successfully", fiber.Map{"id": id})
}

func tagsJSON(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
