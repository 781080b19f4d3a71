package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
)

const maxQueryLen = 200

// QueryString returns the trimmed query value, capped in length.
func QueryString(r *http.Request, key string) string {
	return SanitizeString(r.URL.Query().Get(key), maxQueryLen)
}

func ParseQueryBool(r *http.Request, key string, defaultVal bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseQueryEnum parses an optional enum filter. An absent parameter yields nil.
func ParseQueryEnum[T ~string](r *http.Request, key string, parse func(string) (T, error)) (*T, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	if raw == "" || raw == "all" {
		return nil, nil
	}
	value, err := parse(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid query parameter").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// ParseEnum parses a required enum from a request body field.
func ParseEnum[T ~string](field, raw string, parse func(string) (T, error)) (T, error) {
	value, err := parse(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		var zero T
		return zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").WithDetails(map[string]string{field: "is invalid"})
	}
	return value, nil
}

// ParseOptionalEnum is ParseEnum for patch fields; nil stays nil.
func ParseOptionalEnum[T ~string](field string, raw *string, parse func(string) (T, error)) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	value, err := ParseEnum(field, *raw, parse)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
