package validation

import (
	"errors"
	"testing"

	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/apperr"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/models"
)

func validInput() models.BlogInput {
	return models.BlogInput{
		AuthorName: "Jamie Doe",
		Title:      "Hiking the high passes",
		Category:   "hiking",
		Summary:    "A week above the treeline",
		Content:    "Day one started before sunrise with a slow climb.",
	}
}

func TestBlogInputValid(t *testing.T) {
	if err := BlogInput(validInput()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestBlogInputOptionalFieldsPassThrough(t *testing.T) {
	in := validInput()
	in.SubCategory = "alpine"
	in.TravelTags = "x,y,z"
	in.PublishingDate = "not-a-date"
	if err := BlogInput(in); err != nil {
		t.Fatalf("optional fields must not be validated, got %v", err)
	}
}

func TestBlogInputSingleViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.BlogInput)
		field   string
		message string
	}{
		{
			name:    "short author name",
			mutate:  func(in *models.BlogInput) { in.AuthorName = "ab" },
			field:   "authorName",
			message: "Author name must be at least 3 characters",
		},
		{
			name:    "short title",
			mutate:  func(in *models.BlogInput) { in.Title = "hey" },
			field:   "title",
			message: "Title must be at least 5 characters",
		},
		{
			name:    "missing category",
			mutate:  func(in *models.BlogInput) { in.Category = "" },
			field:   "category",
			message: "Category is required",
		},
		{
			name:    "short summary",
			mutate:  func(in *models.BlogInput) { in.Summary = "too short" },
			field:   "summary",
			message: "Summary must be at least 10 characters",
		},
		{
			name:    "short content",
			mutate:  func(in *models.BlogInput) { in.Content = "not enough here" },
			field:   "content",
			message: "Content must be at least 20 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := BlogInput(in)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var ae *apperr.Error
			if !errors.As(err, &ae) {
				t.Fatalf("expected *apperr.Error, got %T", err)
			}
			if ae.Kind != apperr.Validation {
				t.Fatalf("expected Validation kind, got %v", ae.Kind)
			}
			if len(ae.Fields) != 1 {
				t.Fatalf("expected exactly one violated field, got %v", ae.Fields)
			}
			if got := ae.Fields[tt.field]; got != tt.message {
				t.Errorf("Fields[%q] = %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestBlogInputReportsAllViolationsAtOnce(t *testing.T) {
	err := BlogInput(models.BlogInput{})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	for _, field := range []string{"authorName", "title", "category", "summary", "content"} {
		if _, ok := ae.Fields[field]; !ok {
			t.Errorf("missing violation for %q in %v", field, ae.Fields)
		}
	}
	if len(ae.Fields) != 5 {
		t.Errorf("expected 5 violations, got %d: %v", len(ae.Fields), ae.Fields)
	}
}
