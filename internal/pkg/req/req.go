/*
Package req provides helper functions for HTTP request parsing and data binding.

It decodes JSON request bodies with size and format checks and validates the bound
structs, translating every failure into an errs.CustomError the handlers can return as-is.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ysocial/internal/pkg/errs"
)

// MaxJSONBodySize caps the size of JSON request bodies.
const MaxJSONBodySize int64 = 1 << 20 // 1 MB

var validate = newValidator()

// FieldError describes one request field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so clients see the keys they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// BindJSON attempts to bind the JSON data from the HTTP request body to the destination struct dst.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// Validate checks dst against its `validate` struct tags. On failure it returns
// errs.ErrValidation whose data lists every failing field.
func Validate(dst any) *errs.CustomError {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.NewError(errs.ErrUnknown, err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}

	return InvalidFields(fields...)
}

// InvalidFields builds the validation error for fields checked outside struct tags.
func InvalidFields(fields ...FieldError) *errs.CustomError {
	return errs.NewError(errs.ErrValidation).WithData(map[string]any{
		"fields": fields,
	})
}
