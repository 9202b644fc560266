package catalog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uniscout/uniscout-api/services"
	"github.com/uniscout/uniscout-api/utils/response"
)

// CatalogHandler serves the reference data the search UI builds its
// filter controls from: metadata ranges, majors, document types and
// location lists. Everything here is public and cacheable.
type CatalogHandler struct {
	metadata *services.MetadataService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(metadata *services.MetadataService) *CatalogHandler {
	return &CatalogHandler{metadata: metadata}
}

// SearchMetadata handles GET /api/v1/search-metadata
func (h *CatalogHandler) SearchMetadata(c *fiber.Ctx) error {
	meta, err := h.metadata.SearchMetadata(c.Context())
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch search metadata", err)
	}
	return response.CachedJSON(c, fiber.Map{"data": meta})
}

// PopularMajors handles GET /api/v1/popular-majors
func (h *CatalogHandler) PopularMajors(c *fiber.Ctx) error {
	majors, err := h.metadata.PopularMajors(c.Context())
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch popular majors", err)
	}
	return response.CachedJSON(c, fiber.Map{"data": majors})
}

// InternationalDocuments handles GET /api/v1/international-documents
func (h *CatalogHandler) InternationalDocuments(c *fiber.Ctx) error {
	docs, err := h.metadata.InternationalDocuments(c.Context())
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch international documents", err)
	}
	return response.CachedJSON(c, fiber.Map{"data": docs})
}

// States handles GET /api/v1/states
func (h *CatalogHandler) States(c *fiber.Ctx) error {
	states, err := h.metadata.States(c.Context())
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch states", err)
	}
	return response.CachedJSON(c, fiber.Map{"data": states})
}

// Cities handles GET /api/v1/cities
func (h *CatalogHandler) Cities(c *fiber.Ctx) error {
	cities, err := h.metadata.Cities(c.Context())
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch cities", err)
	}
	return response.CachedJSON(c, fiber.Map{"data": cities})
}

// Locales handles GET /api/v1/locales
func (h *CatalogHandler) Locales(c *fiber.Ctx) error {
	locales, err := h.metadata.Locales(c.Context())
	if err != nil {
		return response.InternalServerErrorWithDetails(c, "Failed to fetch locales", err)
	}
	return response.CachedJSON(c, fiber.Map{"data": locales})
}
