package admissioncycle

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscout/uniscout-api/model"
	"github.com/uniscout/uniscout-api/utils/response"
	"gorm.io/gorm"
)

// AdmissionCycleHandler handles admission-cycle read requests
type AdmissionCycleHandler struct {
	db *gorm.DB
}

// NewAdmissionCycleHandler creates a new admission cycle handler
func NewAdmissionCycleHandler(db *gorm.DB) *AdmissionCycleHandler {
	return &AdmissionCycleHandler{db: db}
}

// List handles GET /api/v1/admission-cycles
func (h *AdmissionCycleHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 100 || offset < 0 {
		return response.BadRequest(c, "Invalid pagination parameters")
	}

	query := h.db.Model(&model.AdmissionCycle{})

	if raw := c.Query("institution_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid institution_id")
		}
		query = query.Where("institution_id = ?", id)
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid year")
		}
		query = query.Where("year_admissions = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to count admission cycles", err)
	}

	var cycles []model.AdmissionCycle
	err := query.
		Order("year_admissions DESC").
		Limit(limit).
		Offset(offset).
		Preload("Institution").
		Preload("AdmissionRequirements").
		Preload("TestScores").
		Preload("EnglishRequirements").
		Preload("InternationalDocuments").
		Find(&cycles).Error
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch admission cycles", err)
	}

	return c.Status(fiber.StatusOK).JSON(response.NewEnvelope(cycles, total, offset, limit))
}

// Get handles GET /api/v1/admission-cycles/:id
func (h *AdmissionCycleHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid admission cycle ID")
	}

	var cycle model.AdmissionCycle
	err = h.db.
		Preload("Institution.City.State").
		Preload("Institution.EnrollmentStats").
		Preload("AdmissionRequirements").
		Preload("TestScores").
		Preload("EnglishRequirements").
		Preload("InternationalDocuments").
		First(&cycle, uint(id)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Admission cycle not found")
		}
		return response.InternalServerErrorWithDetails(c, "Failed to fetch admission cycle", err)
	}

	return response.Success(c, cycle)
}
