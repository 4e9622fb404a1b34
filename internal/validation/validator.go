package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/studio-admin-api/internal/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChar   = regexp.MustCompile(`[^a-z0-9-]`)
)

// wordsPerMinute is the reading speed assumed by ReadTime.
const wordsPerMinute = 200

// Slug derives a URL-safe identifier from a title or name: lowercase, each
// maximal whitespace run collapsed to a single hyphen, every remaining
// character outside [a-z0-9-] stripped. Deterministic and idempotent for an
// unchanged input.
func Slug(text string) string {
	s := strings.ToLower(text)
	s = whitespaceRun.ReplaceAllString(s, "-")
	return nonSlugChar.ReplaceAllString(s, "")
}

// ReadTime estimates reading time for post content as ceil(words/200),
// formatted for display. Callers skip it entirely for absent content.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

// ValidEmail reports whether the address is syntactically plausible.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// CleanList trims every entry and drops empties, preserving order. A nil
// input stays nil so "never set" remains distinguishable from "cleared".
func CleanList(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Required-field checks run in a fixed order per resource so the reported
// field is deterministic for any given payload.

// ValidatePost checks the required fields of a blog post payload.
func ValidatePost(in *models.BlogPostInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &models.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(in.Author) == "" {
		return &models.ValidationError{Field: "author", Message: "author is required"}
	}
	if !in.AuthorID.Valid || in.AuthorID.Value <= 0 {
		return &models.ValidationError{Field: "authorId", Message: "authorId must be a positive number"}
	}
	return nil
}

// ValidateClass checks the required fields of a class payload.
func ValidateClass(in *models.ClassInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &models.ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(in.Instructor) == "" {
		return &models.ValidationError{Field: "instructor", Message: "instructor is required"}
	}
	if in.Duration.Valid && in.Duration.Value < 0 {
		return &models.ValidationError{Field: "duration", Message: "duration must be a non-negative number"}
	}
	if in.Capacity.Valid && in.Capacity.Value < 0 {
		return &models.ValidationError{Field: "capacity", Message: "capacity must be a non-negative number"}
	}
	if in.Price.Valid && in.Price.Value < 0 {
		return &models.ValidationError{Field: "price", Message: "price must be a non-negative number"}
	}
	return nil
}

// ValidateCoach checks the required fields of a coach payload.
func ValidateCoach(in *models.CoachInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &models.ValidationError{Field: "name", Message: "name is required"}
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return &models.ValidationError{Field: "email", Message: "email is required"}
	}
	if !ValidEmail(email) {
		return &models.ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateEvent checks the required fields of an event payload.
func ValidateEvent(in *models.EventInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &models.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(in.Date) == "" {
		return &models.ValidationError{Field: "date", Message: "date is required"}
	}
	if in.Capacity.Valid && in.Capacity.Value < 0 {
		return &models.ValidationError{Field: "capacity", Message: "capacity must be a non-negative number"}
	}
	if in.Price.Valid && in.Price.Value < 0 {
		return &models.ValidationError{Field: "price", Message: "price must be a non-negative number"}
	}
	return nil
}

// ValidateProduct checks the required fields of a product payload.
func ValidateProduct(in *models.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &models.ValidationError{Field: "name", Message: "name is required"}
	}
	if !in.Price.Valid || in.Price.Value < 0 {
		return &models.ValidationError{Field: "price", Message: "price must be a non-negative number"}
	}
	if !in.Stock.Valid || in.Stock.Value < 0 {
		return &models.ValidationError{Field: "stock", Message: "stock must be a non-negative number"}
	}
	if in.OriginalPrice.Valid && in.OriginalPrice.Value < 0 {
		return &models.ValidationError{Field: "originalPrice", Message: "originalPrice must be a non-negative number"}
	}
	return nil
}
