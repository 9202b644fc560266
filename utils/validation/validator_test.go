package validation

import (
	"strings"
	"testing"
)

type registrationForm struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
	Score int    `validate:"gte=0,lte=120"`
}

func TestValidateStructPasses(t *testing.T) {
	v := NewValidator()
	form := registrationForm{Email: "user@example.com", Name: "Jo", Score: 100}
	if err := v.ValidateStruct(form); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()
	err := v.ValidateStruct(registrationForm{Email: "not-an-email", Score: 200})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := FormatValidationErrors(err)
	if formatted["email"] != "Invalid email format" {
		t.Errorf("email message = %q", formatted["email"])
	}
	if formatted["name"] != "Name is required" {
		t.Errorf("name message = %q", formatted["name"])
	}
	if !strings.Contains(formatted["score"], "less than or equal to 120") {
		t.Errorf("score message = %q", formatted["score"])
	}
}

func TestErrorDetails(t *testing.T) {
	v := NewValidator()
	err := v.ValidateStruct(registrationForm{Email: "not-an-email", Name: "Jo"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	details := ErrorDetails(err)
	if details != "Invalid email format" {
		t.Errorf("single-field details = %q", details)
	}

	err = v.ValidateStruct(registrationForm{Score: 200})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	details = ErrorDetails(err)
	// Fields are sorted, so the joined message is deterministic
	if !strings.Contains(details, "Email is required; Name is required") {
		t.Errorf("multi-field details = %q", details)
	}
	if !strings.HasSuffix(details, "less than or equal to 120") {
		t.Errorf("details should end with the score message, got %q", details)
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  padded  ", "padded"},
		{"with\x00null", "withnull"},
		{"clean", "clean"},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
