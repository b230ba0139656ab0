package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rohanthewiz/serr"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	routePathPattern = regexp.MustCompile(`^/[A-Za-z0-9._~/?=&#%+-]*$`)
)

// validatorInstance returns the shared validator with the site-specific rules registered
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("route_path", func(fl validator.FieldLevel) bool {
			return IsRoutePath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsRoutePath accepts site-relative paths only: no scheme, no host, no parent segments
func IsRoutePath(p string) bool {
	if strings.HasPrefix(p, "//") || strings.Contains(p, "..") {
		return false
	}
	return routePathPattern.MatchString(p)
}

// convertValidationError reports the first failing field in yaml-ish dotted form
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		return serr.Wrap(err, fmt.Sprintf("%s failed validation for tag '%s'", fieldName(fe), fe.Tag()))
	}
	return serr.Wrap(err, "invalid site config")
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	// drop the root type name
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
