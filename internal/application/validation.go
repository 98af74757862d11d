package application

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"roommind/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared struct validator. Field names in errors use
// the json tag name.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "noteID" -> "note ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"noteID":         "note ID",
		"anchorID":       "anchor ID",
		"parentAnchorId": "parent anchor ID",
		"id":             "ID",
		"title":          "title",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateStruct runs tag validation and converts the first failure into a
// ValidationError.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Message: describeFieldError(fe),
	}
}

func describeFieldError(fe validator.FieldError) string {
	name := formatFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", name, fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}

// ValidateAnchors checks every anchor and that IDs are unique
func ValidateAnchors(anchors []domain.SpatialAnchor) error {
	for i, a := range anchors {
		if err := ValidateStruct(a); err != nil {
			return fmt.Errorf("anchor %d (%s): %w", i, a.ID, err)
		}
	}
	if dup := domain.DuplicateAnchorID(anchors); dup != "" {
		return &ValidationError{Field: "id", Message: fmt.Sprintf("duplicate anchor ID %q", dup)}
	}
	return nil
}
