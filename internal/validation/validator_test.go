package validation

import (
	"errors"
	"testing"

	"github.com/studio-admin-api/internal/models"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Practice Shoes", "practice-shoes"},
		{"already lowercase", "salsa basics", "salsa-basics"},
		{"punctuation stripped", "Summer Gala: Night & Day!", "summer-gala-night-day"},
		{"whitespace run collapsed", "Hip   Hop\tFoundations", "hip-hop-foundations"},
		{"leading and trailing spaces", "  Ballet 101  ", "-ballet-101-"},
		{"unicode stripped", "Café Tango", "caf-tango"},
		{"numbers kept", "Top 10 Moves of 2024", "top-10-moves-of-2024"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.expected {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{"Practice Shoes", "Summer Gala: Night & Day!", "top-10-moves"}
	for _, input := range inputs {
		once := Slug(input)
		if twice := Slug(once); twice != once {
			t.Errorf("Slug not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestReadTime(t *testing.T) {
	short := "one two three"
	if got := ReadTime(short); got != "1 min read" {
		t.Errorf("ReadTime(short) = %q, want %q", got, "1 min read")
	}

	// 201 words must round up to 2 minutes
	long := ""
	for i := 0; i < 201; i++ {
		long += "word "
	}
	if got := ReadTime(long); got != "2 min read" {
		t.Errorf("ReadTime(201 words) = %q, want %q", got, "2 min read")
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("ValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "not-an-email", "missing@domain", "@example.com"}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("ValidEmail(%q) = true, want false", email)
		}
	}
}

func TestCleanList(t *testing.T) {
	got := CleanList([]string{" Salsa ", "", "  ", "Tango"})
	if len(got) != 2 || got[0] != "Salsa" || got[1] != "Tango" {
		t.Errorf("CleanList returned %v, want [Salsa Tango]", got)
	}

	if CleanList(nil) != nil {
		t.Error("CleanList(nil) should stay nil")
	}

	if got := CleanList([]string{"  "}); got == nil || len(got) != 0 {
		t.Errorf("CleanList of blanks should be empty, not nil, got %v", got)
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return vErr.Field
}

func TestValidatePost(t *testing.T) {
	valid := &models.BlogPostInput{
		Title:    "First Post",
		Author:   "Jane",
		AuthorID: models.OptInt{Valid: true, Value: 1},
	}
	if err := ValidatePost(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	missingTitle := &models.BlogPostInput{Author: "Jane", AuthorID: models.OptInt{Valid: true, Value: 1}}
	if field := fieldOf(t, ValidatePost(missingTitle)); field != "title" {
		t.Errorf("missing title reported field %q, want title", field)
	}

	badAuthorID := &models.BlogPostInput{Title: "First Post", Author: "Jane"}
	if field := fieldOf(t, ValidatePost(badAuthorID)); field != "authorId" {
		t.Errorf("absent authorId reported field %q, want authorId", field)
	}

	negativeAuthorID := &models.BlogPostInput{
		Title:    "First Post",
		Author:   "Jane",
		AuthorID: models.OptInt{Valid: true, Value: -4},
	}
	if field := fieldOf(t, ValidatePost(negativeAuthorID)); field != "authorId" {
		t.Errorf("negative authorId reported field %q, want authorId", field)
	}
}

func TestValidateClass(t *testing.T) {
	valid := &models.ClassInput{Name: "Salsa Basics", Instructor: "Maria"}
	if err := ValidateClass(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	missingInstructor := &models.ClassInput{Name: "Salsa Basics"}
	if field := fieldOf(t, ValidateClass(missingInstructor)); field != "instructor" {
		t.Errorf("missing instructor reported field %q, want instructor", field)
	}

	negativeDuration := &models.ClassInput{
		Name:       "Salsa Basics",
		Instructor: "Maria",
		Duration:   models.OptInt{Valid: true, Value: -60},
	}
	if field := fieldOf(t, ValidateClass(negativeDuration)); field != "duration" {
		t.Errorf("negative duration reported field %q, want duration", field)
	}
}

func TestValidateCoach(t *testing.T) {
	valid := &models.CoachInput{Name: "Jane Doe", Email: "jane@example.com"}
	if err := ValidateCoach(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	missingEmail := &models.CoachInput{Name: "Jane Doe"}
	if field := fieldOf(t, ValidateCoach(missingEmail)); field != "email" {
		t.Errorf("missing email reported field %q, want email", field)
	}

	badEmail := &models.CoachInput{Name: "Jane Doe", Email: "not-an-email"}
	if field := fieldOf(t, ValidateCoach(badEmail)); field != "email" {
		t.Errorf("bad email reported field %q, want email", field)
	}
}

func TestValidateEvent(t *testing.T) {
	valid := &models.EventInput{Title: "Summer Gala", Date: "2024-07-01"}
	if err := ValidateEvent(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	missingDate := &models.EventInput{Title: "Summer Gala"}
	if field := fieldOf(t, ValidateEvent(missingDate)); field != "date" {
		t.Errorf("missing date reported field %q, want date", field)
	}
}

func TestValidateProduct(t *testing.T) {
	valid := &models.ProductInput{
		Name:  "Practice Shoes",
		Price: models.OptFloat{Valid: true, Value: 29.99},
		Stock: models.OptInt{Valid: true, Value: 10},
	}
	if err := ValidateProduct(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	// A required numeric that failed to parse is treated as absent.
	missingPrice := &models.ProductInput{Name: "Practice Shoes", Stock: models.OptInt{Valid: true, Value: 10}}
	if field := fieldOf(t, ValidateProduct(missingPrice)); field != "price" {
		t.Errorf("absent price reported field %q, want price", field)
	}

	missingStock := &models.ProductInput{Name: "Practice Shoes", Price: models.OptFloat{Valid: true, Value: 29.99}}
	if field := fieldOf(t, ValidateProduct(missingStock)); field != "stock" {
		t.Errorf("absent stock reported field %q, want stock", field)
	}
}
