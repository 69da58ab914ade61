package validators

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// IsIso8601 accepts RFC3339 timestamps ("2026-03-01T10:00:00Z").
func IsIso8601(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}

func NoWhiteSpaces(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}
