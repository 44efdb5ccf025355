package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should include both fields: %s", result)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := Default()

		if errs := cfg.Validate(); len(errs) != 0 {
			t.Errorf("Validate() returned %d errors for defaults: %v", len(errs), errs)
		}
	})

	t.Run("unknown theme and filter pass validation", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.Theme = "sepia"
		cfg.TUI.Filter = "regex"

		if errs := cfg.Validate(); len(errs) != 0 {
			t.Errorf("Validate() returned %d errors: %v", len(errs), errs)
		}
	})
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"empty level is allowed", "", false},
		{"known level", "debug", false},
		{"known level uppercase", "WARN", false},
		{"unknown level", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Level = tt.level

			errs := cfg.Validate()
			if tt.wantErr && len(errs) == 0 {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && len(errs) != 0 {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	t.Run("null byte in themes dir", func(t *testing.T) {
		cfg := Default()
		cfg.Paths.ThemesDir = "/tmp/\x00/themes"

		errs := cfg.Validate()
		if len(errs) != 1 {
			t.Fatalf("Validate() returned %d errors, want 1", len(errs))
		}
		if errs[0].Field != "paths.themes_dir" {
			t.Errorf("Field = %q, want %q", errs[0].Field, "paths.themes_dir")
		}
	})

	t.Run("overlong themes dir", func(t *testing.T) {
		cfg := Default()
		cfg.Paths.ThemesDir = "/" + strings.Repeat("a", 5000)

		if errs := cfg.Validate(); len(errs) != 1 {
			t.Errorf("Validate() returned %d errors, want 1", len(errs))
		}
	})
}

func TestValidateKeys(t *testing.T) {
	tests := []struct {
		name    string
		keys    map[string]string
		wantErr string
	}{
		{
			name: "valid single spec",
			keys: map[string]string{"quit": "ctrl+x"},
		},
		{
			name: "valid multi spec with spaces",
			keys: map[string]string{"help": "f1, alt+h"},
		},
		{
			name:    "unknown key name",
			keys:    map[string]string{"zoom": "z"},
			wantErr: "keys.zoom",
		},
		{
			name:    "unparseable spec",
			keys:    map[string]string{"quit": "hyper+x"},
			wantErr: "keys.quit",
		},
		{
			name:    "one bad spec in a list",
			keys:    map[string]string{"quit": "ctrl+x,bogus"},
			wantErr: "keys.quit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Keys = tt.keys

			errs := cfg.Validate()
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("expected a validation error")
			}
			if errs[0].Field != tt.wantErr {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantErr)
			}
		})
	}
}
