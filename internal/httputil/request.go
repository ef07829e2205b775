package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
//
// Validation errors are turned into one readable message, e.g. "description is required".
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				messages = append(messages, ValidationErrorToText(e))
			}
			return fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(messages, ", "))
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s must be of type %s", ErrInvalidBody, jsonUnmarshalTypeError.Field, jsonUnmarshalTypeError.Type)
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ValidationErrorToText returns a message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	field := lowerFirst(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s long", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must only contain digits", field)
	}
	return fmt.Sprintf("%s is not valid", field)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// UUIDFromString parses a resource ID from a path parameter.
func UUIDFromString(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}
