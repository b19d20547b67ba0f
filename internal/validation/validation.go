package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})
}

// Error is a typed validation failure: a map of offending field names
// to the constraint they broke. It never reaches the store.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewError builds a single-field validation error for checks the
// validator tags cannot express.
func NewError(field, reason string) *Error {
	return &Error{Fields: map[string]string{field: reason}}
}

// Check validates the struct's `validate` tags and returns a typed
// *Error, or nil when the struct is valid.
func Check(s interface{}) *Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range verrs {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
	} else {
		fields["_"] = err.Error()
	}
	return &Error{Fields: fields}
}

// ErrorsToJson serialises a validation *Error into the payload returned
// to callers.
func ErrorsToJson(e *Error) (string, error) {
	errsJson, err := json.Marshal(e.Fields)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
