package response

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestETagForDeterminism(t *testing.T) {
	payload := fiber.Map{"data": []int{1, 2, 3}}

	etag1, body1, err := ETagFor(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	etag2, _, err := ETagFor(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if etag1 != etag2 {
		t.Errorf("same payload produced different ETags: %s vs %s", etag1, etag2)
	}
	if len(etag1) != 64 {
		t.Errorf("ETag should be a sha256 hex digest, got %d chars", len(etag1))
	}
	if len(body1) == 0 {
		t.Error("expected serialized body")
	}

	etag3, _, err := ETagFor(fiber.Map{"data": []int{1, 2, 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if etag3 == etag1 {
		t.Error("different payloads must not share an ETag")
	}
}

func TestCachedJSONFreshRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return CachedJSON(c, fiber.Map{"data": "hello"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("Etag") == "" {
		t.Error("missing ETag header")
	}
	if got := resp.Header.Get("Cache-Control"); got != CacheControl {
		t.Errorf("Cache-Control = %q, want %q", got, CacheControl)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"data":"hello"}` {
		t.Errorf("body = %s", body)
	}
}

func TestCachedJSONNotModified(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return CachedJSON(c, fiber.Map{"data": "hello"})
	})

	first, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	first.Body.Close()
	etag := first.Header.Get("Etag")
	if etag == "" {
		t.Fatal("missing ETag header on first response")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("If-None-Match", etag)
	second, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer second.Body.Close()

	if second.StatusCode != fiber.StatusNotModified {
		t.Errorf("status = %d, want 304", second.StatusCode)
	}
	body, _ := io.ReadAll(second.Body)
	if len(body) != 0 {
		t.Errorf("304 response must have no body, got %s", body)
	}
	if got := second.Header.Get("Etag"); got != etag {
		t.Errorf("304 response ETag = %q, want %q", got, etag)
	}
}

func TestCachedJSONStaleValidator(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return CachedJSON(c, fiber.Map{"data": "hello"})
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("If-None-Match", "stale-etag")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("stale validator should get a full 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		t.Error("expected full body for stale validator")
	}
}
