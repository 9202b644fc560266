package response

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// CacheControl applied to every cacheable search response. The server-side
// max-age and stale-while-revalidate window match the CDN configuration.
const CacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// ETagFor computes the content fingerprint of a payload: the SHA-256 hex
// digest of its JSON serialization
func ETagFor(payload interface{}) (string, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), body, nil
}

// CachedJSON writes payload with an ETag and cache directives. When the
// client's If-None-Match token matches the fresh fingerprint it answers
// 304 Not Modified with no body and the same headers.
func CachedJSON(c *fiber.Ctx, payload interface{}) error {
	etag, body, err := ETagFor(payload)
	if err != nil {
		return InternalServerError(c, "Failed to encode response")
	}

	c.Set(fiber.HeaderETag, etag)
	c.Set(fiber.HeaderCacheControl, CacheControl)

	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}
