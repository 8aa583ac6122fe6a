package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	hexRGB = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance returns the shared validator with the config's custom
// tags registered. Field names in errors are the TOML keys.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation("css_value", validCSSValue)
		_ = v.RegisterValidation("hex_rgb", func(fl validator.FieldLevel) bool {
			return hexRGB.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// validCSSValue rejects values that could close the declaration they are
// interpolated into.
func validCSSValue(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" || len(s) > 128 {
		return false
	}
	return !strings.ContainsAny(s, ";{}<>\\\"'")
}

// validateConfig runs the struct tag rules and the checks that span fields.
func validateConfig(config *Config) error {
	var validationErrors []string

	if err := validatorInstance().Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			validationErrors = append(validationErrors, describeFieldError(fe))
		}
	}

	validationErrors = append(validationErrors, validateHomeURL(config)...)
	validationErrors = append(validationErrors, validateInjection(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	key := fe.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s must be >= %s", key, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", key, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL, got %q", key, fmt.Sprint(fe.Value()))
	case "css_value":
		return key + " must be a plain CSS value"
	case "hex_rgb":
		return key + " must be a hex color like #RRGGBB"
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}

func validateHomeURL(config *Config) []string {
	u, err := url.Parse(strings.TrimSpace(config.HomeURL))
	if err != nil || u.Hostname() == "" {
		// Already reported by the struct rules.
		return nil
	}
	if u.User != nil {
		return []string{"home_url must not contain credentials"}
	}
	return nil
}

func validateInjection(config *Config) []string {
	if config.Injection.Enabled && strings.TrimSpace(config.Injection.BackgroundColor) == "" {
		return []string{"injection.background_color is required when injection is enabled"}
	}
	return nil
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	if config.Engine.ControlURL != "" && config.Engine.Bin != "" {
		validationErrors = append(validationErrors, "engine.control_url and engine.bin are mutually exclusive")
	}
	vp := config.Engine.Viewport
	if (vp.Width == 0) != (vp.Height == 0) {
		validationErrors = append(validationErrors, "engine.viewport width and height must be set together")
	}
	return validationErrors
}
