package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Locale", "")

	if !cv.HasErrors() {
		t.Error("Expected error for empty required field")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Required("Locale", "id")

	if cv2.HasErrors() {
		t.Error("Expected no error for non-empty required field")
	}
}

func TestConfigValidator_NonNegative(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.NonNegative("CacheSize", -1)
	if !cv.HasErrors() {
		t.Error("Expected error for negative value")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.NonNegative("CacheSize", 0)
	if cv2.HasErrors() {
		t.Error("Expected no error for zero")
	}
}

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min       int
		max       int
		expectErr bool
	}{
		{"within range", 5, 1, 10, false},
		{"at minimum", 1, 1, 10, false},
		{"at maximum", 10, 1, 10, false},
		{"below range", 0, 1, 10, true},
		{"above range", 11, 1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("TestConfig")
			cv.RangeInt("Value", tt.value, tt.min, tt.max)
			if cv.HasErrors() != tt.expectErr {
				t.Errorf("RangeInt(%d, %d, %d) hasErrors = %v, want %v", tt.value, tt.min, tt.max, cv.HasErrors(), tt.expectErr)
			}
		})
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"latin", "lontara", "both"}

	cv := NewConfigValidator("TestConfig")
	cv.OneOf("Script", "both", allowed)
	if cv.HasErrors() {
		t.Error("Expected no error for allowed value")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.OneOf("Script", "cyrillic", allowed)
	if !cv2.HasErrors() {
		t.Error("Expected error for disallowed value")
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("bad value")

	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return sentinel })

	if !errors.Is(cv.Validate(), sentinel) {
		t.Errorf("Validate() = %v, want wrapped sentinel", cv.Validate())
	}
}

func TestConfigValidator_Validate(t *testing.T) {
	if err := NewConfigValidator("TestConfig").Validate(); err != nil {
		t.Errorf("Validate() on clean validator = %v, want nil", err)
	}

	sentinel := errors.New("second")
	cv := NewConfigValidator("TestConfig").
		Required("Locale", "").
		Custom("Other", func() error { return sentinel })

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected combined error")
	}
	if len(cv.Errors()) != 2 {
		t.Errorf("len(Errors()) = %d, want 2", len(cv.Errors()))
	}
	if !strings.Contains(err.Error(), "2 errors") || !errors.Is(err, sentinel) {
		t.Errorf("combined error %q should count and wrap every failure", err)
	}
}

func TestDefaultOr(t *testing.T) {
	if got := DefaultOr("", "id"); got != "id" {
		t.Errorf("DefaultOr empty string = %q, want id", got)
	}
	if got := DefaultOr("en", "id"); got != "en" {
		t.Errorf("DefaultOr set string = %q, want en", got)
	}
	if got := DefaultOr(0, 1024); got != 1024 {
		t.Errorf("DefaultOr zero int = %d, want 1024", got)
	}
}
