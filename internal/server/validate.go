package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const hexPattern = "^[0-9a-fA-F]+$"

var hexRegexp = regexp.MustCompile(hexPattern) //nolint:gochecknoglobals

func newValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("schema"), ",")

		return name
	})

	if err := validate.RegisterValidation("hexchars", func(fl validator.FieldLevel) bool {
		return hexRegexp.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("registering hexchars validation: %w", err)
	}

	return validate, nil
}

// bind decodes the query string into dst and validates it. On failure it
// writes the response and returns false.
func (s *Server) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := s.decoder.Decode(dst, r.URL.Query()); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return false
	}

	err := s.validate.Struct(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeDetail(w, http.StatusBadRequest, err.Error())

		return false
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describe(fe))
	}

	writeFieldErrors(w, out)

	return false
}

func describe(fe validator.FieldError) fieldError {
	loc := []string{"query", fe.Field()}
	value := fe.Value().(string) //nolint:forcetypeassert // all query fields are strings

	switch fe.Tag() {
	case "required":
		return fieldError{Loc: loc, Msg: "Field required", Type: "missing"}
	case "max":
		return fieldError{Loc: loc, Msg: fmt.Sprintf("String should have at most %s characters", fe.Param()), Type: "string_too_long"}
	case "len":
		if want, _ := strconv.Atoi(fe.Param()); utf8.RuneCountInString(value) > want {
			return fieldError{Loc: loc, Msg: fmt.Sprintf("String should have at most %s characters", fe.Param()), Type: "string_too_long"}
		}

		return fieldError{Loc: loc, Msg: fmt.Sprintf("String should have at least %s characters", fe.Param()), Type: "string_too_short"}
	case "hexchars":
		return fieldError{Loc: loc, Msg: fmt.Sprintf("String should match pattern '%s'", hexPattern), Type: "string_pattern_mismatch"}
	default:
		return fieldError{Loc: loc, Msg: fe.Error(), Type: "value_error"}
	}
}
