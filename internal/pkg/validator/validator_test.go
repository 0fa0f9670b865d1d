package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"123E4567-E89B-42D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b42d3a456426614174000",     // missing dashes
		"g23e4567-e89b-42d3-a456-426614174000", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"2024-13-01", false},
		{"2024-1-5", false},
		{"15-01-2024", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidDate(c.input)
		if got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"pending", "approved", "rejected"}
	if !IsInSlice("approved", slice) {
		t.Error("IsInSlice(approved) = false, want true")
	}
	if IsInSlice("Approved", slice) {
		t.Error("IsInSlice(Approved) = true, want false")
	}
	if IsInSlice("", slice) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}
