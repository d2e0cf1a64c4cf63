package flow

import "testing"

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"full persian name", "علی محمدی", true},
		{"single long word", "محمدرضا", true},
		{"latin letters", "Ali", false},
		{"two persian letters", "لی", false},
		{"contains digits", "علی 09", false},
		{"contains punctuation", "علی!", false},
		{"empty", "", false},
		// Quirk of the pattern: whitespace counts toward the minimum length.
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid mobile number", "09123456789", true},
		{"missing leading zero", "9123456789", false},
		{"trailing letter", "0912345678a", false},
		{"too long", "091234567890", false},
		{"too short", "091234567", false},
		{"wrong prefix", "08123456789", false},
		{"persian digits", "۰۹۱۲۳۴۵۶۷۸۹", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.input); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsKnownReason(t *testing.T) {
	for _, reason := range Reasons {
		if !IsKnownReason(reason) {
			t.Errorf("IsKnownReason(%q) = false, want true", reason)
		}
	}

	rejected := []string{
		"بورس کالا ",  // trailing space
		" بورس کالا",  // leading space
		"بورس كالا",   // arabic kaf instead of persian
		"بورس",        // partial label
		"credit",      // wrong language
		"",
	}

	for _, input := range rejected {
		if IsKnownReason(input) {
			t.Errorf("IsKnownReason(%q) = true, want false", input)
		}
	}
}
