// Package validation checks incoming blog fields against the post schema.
// A failed check reports every violated field at once, not just the first.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/apperr"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/models"
)

var validate = validator.New()

var fieldMessages = map[string]string{
	"AuthorName": "Author name must be at least 3 characters",
	"Title":      "Title must be at least 5 characters",
	"Category":   "Category is required",
	"Summary":    "Summary must be at least 10 characters",
	"Content":    "Content must be at least 20 characters",
}

// BlogInput validates in and returns nil or an apperr of kind Validation
// whose Fields map lists every violation keyed by the wire field name.
func BlogInput(in models.BlogInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.NewUpstream("validate blog input", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, known := fieldMessages[fe.StructField()]
		if !known {
			msg = fmt.Sprintf("%s failed on the %s rule", fe.StructField(), fe.Tag())
		}
		fields[wireName(fe.StructField())] = msg
	}
	return apperr.NewValidation(fields)
}

// wireName lowercases the leading rune: AuthorName -> authorName.
func wireName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
