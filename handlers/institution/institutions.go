package institution

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscout/uniscout-api/model"
	"github.com/uniscout/uniscout-api/services"
	"github.com/uniscout/uniscout-api/utils/response"
	"github.com/uniscout/uniscout-api/utils/validation"
	"gorm.io/gorm"
)

// InstitutionHandler handles institution-related requests
type InstitutionHandler struct {
	db        *gorm.DB
	search    *services.InstitutionSearchService
	metadata  *services.MetadataService
	validator *validation.Validator
}

// NewInstitutionHandler creates a new institution handler
func NewInstitutionHandler(db *gorm.DB, search *services.InstitutionSearchService, metadata *services.MetadataService) *InstitutionHandler {
	return &InstitutionHandler{
		db:        db,
		search:    search,
		metadata:  metadata,
		validator: validation.NewValidator(),
	}
}

// InstitutionRequest is the request body for creating or updating an
// institution; fields mirror the institutions table
type InstitutionRequest struct {
	Name      string `json:"institution_name" validate:"required,min=1,max=500"`
	Rank      *int   `json:"rank" validate:"omitempty,gt=0"`
	CityID    *uint  `json:"city_id" validate:"omitempty,gt=0"`
	LevelID   *uint  `json:"level_id" validate:"omitempty,gt=0"`
	ControlID *uint  `json:"control_id" validate:"omitempty,gt=0"`
	LocaleID  *uint  `json:"locale_id" validate:"omitempty,gt=0"`
}

// Search handles GET /api/v1/institutions
func (h *InstitutionHandler) Search(c *fiber.Ctx) error {
	params, err := ParseSearchParams(c.Queries())
	if err != nil {
		return response.BadRequest(c, "Invalid search parameters")
	}

	if err := h.validator.ValidateStruct(params); err != nil {
		return response.BadRequestWithDetails(c, "Invalid search parameters", validation.ErrorDetails(err))
	}

	institutions, total, err := h.search.Search(c.Context(), params)
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to search institutions", err)
	}

	envelope := response.NewEnvelope(institutions, total, params.Offset, params.Limit)
	return response.CachedJSON(c, envelope)
}

// Get handles GET /api/v1/institutions/:id
func (h *InstitutionHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid institution ID")
	}

	institution, err := h.search.GetByID(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Institution not found")
		}
		return response.InternalServerErrorWithDetails(c, "Failed to fetch institution", err)
	}

	return response.Success(c, institution)
}

// Create handles POST /api/v1/institutions (admin only, enforced by router)
func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	var req InstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequestWithDetails(c, "Invalid institution data", validation.ErrorDetails(err))
	}

	institution := model.Institution{
		Name:      validation.SanitizeString(req.Name),
		Rank:      req.Rank,
		CityID:    req.CityID,
		LevelID:   req.LevelID,
		ControlID: req.ControlID,
		LocaleID:  req.LocaleID,
	}

	if err := h.db.Create(&institution).Error; err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to create institution", err)
	}

	h.metadata.InvalidateSearchMetadata(c.Context())

	return response.Created(c, "Institution created successfully", institution)
}

// Update handles PUT /api/v1/institutions/:id (admin only, enforced by router)
func (h *InstitutionHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid institution ID")
	}

	var req InstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequestWithDetails(c, "Invalid institution data", validation.ErrorDetails(err))
	}

	var institution model.Institution
	if err := h.db.First(&institution, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Institution not found")
		}
		return response.InternalServerErrorWithDetails(c, "Failed to fetch institution", err)
	}

	institution.Name = validation.SanitizeString(req.Name)
	institution.Rank = req.Rank
	institution.CityID = req.CityID
	institution.LevelID = req.LevelID
	institution.ControlID = req.ControlID
	institution.LocaleID = req.LocaleID

	if err := h.db.Save(&institution).Error; err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to update institution", err)
	}

	h.metadata.InvalidateSearchMetadata(c.Context())

	return response.SuccessWithMessage(c, "Institution updated successfully", institution)
}

// Delete handles DELETE /api/v1/institutions/:id (admin only, enforced by router)
func (h *InstitutionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid institution ID")
	}

	result := h.db.Delete(&model.Institution{}, uint(id))
	if result.Error != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to delete institution", result.Error)
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Institution not found")
	}

	h.metadata.InvalidateSearchMetadata(c.Context())

	return response.SuccessWithMessage(c, "Institution deleted successfully", fiber.Map{"institution_id": id})
}
