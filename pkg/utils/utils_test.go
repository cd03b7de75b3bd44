package utils

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "ana@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	user, err := ValidateToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if user.ID != 42 || user.Email != "ana@example.com" {
		t.Errorf("unexpected user context %+v", user)
	}

	if _, err := ValidateToken(token, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: got %v, want ErrInvalidToken", err)
	}
	if _, err := ValidateToken("", "secret"); !errors.Is(err, ErrMissingToken) {
		t.Errorf("empty token: got %v, want ErrMissingToken", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, "", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token, "secret"); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("got %v, want ErrExpiredToken", err)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"abc", ""},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractTokenFromHeader(tt.header); got != tt.want {
			t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339 utc", "2030-01-01T10:00:00Z", time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC), false},
		{"rfc3339 millis", "2030-01-01T10:00:00.500Z", time.Date(2030, 1, 1, 10, 0, 0, 500e6, time.UTC), false},
		{"date only is local midnight", "2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, loc), false},
		{"no offset is local", "2024-06-15T19:30:00", time.Date(2024, 6, 15, 19, 30, 0, 0, loc), false},
		{"garbage", "next tuesday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, loc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	start, end := DayBounds(time.Date(2024, 6, 15, 13, 0, 0, 0, loc), loc)

	if want := time.Date(2024, 6, 15, 0, 0, 0, 0, loc); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 6, 15, 23, 59, 59, 999e6, loc); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

type sample struct {
	Title string `validate:"required,min=6"`
	Email string `validate:"omitempty,email"`
	Date  string `validate:"required,isodate"`
}

func TestValidateStruct(t *testing.T) {
	ok := sample{Title: "Team Sync", Date: "2030-01-01T10:00:00Z"}
	if err := ValidateStruct(&ok); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}

	bad := sample{Title: "short", Email: "nope", Date: "tomorrow"}
	err := ValidateStruct(&bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := GetValidationErrors(err)
	for _, f := range []string{"title", "email", "date"} {
		if _, found := fields[f]; !found {
			t.Errorf("missing error for %s in %v", f, fields)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Banner!.PNG", "my-banner.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\photos\Café Night.jpg`, "cafe-night.jpg"},
		{"???.jpg", "file.jpg"},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoragePath(t *testing.T) {
	if got := StoragePath("banners", "abc", ".JPG"); got != "banners/abc.jpg" {
		t.Errorf("StoragePath = %q", got)
	}
}
