package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vk/designspace/internal/paramid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpacePath string `validate:"required"` // hcl file or directory

	Count int     `validate:"min=1"`
	Seed  *uint64 // nil seeds from the system
	// Fixed maps param IDs to value text applied before generation.
	Fixed map[string]string `validate:"dive,keys,paramid,endkeys"`
	// Param, when set, prints a single value instead of whole designs.
	Param  string `validate:"omitempty,paramid"`
	Format string `validate:"oneof=hcl json yaml"`

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("paramid", validateParamID)
}

// validateParamID accepts strings that parse as hierarchical param IDs.
func validateParamID(fl validator.FieldLevel) bool {
	_, err := paramid.Parse(fl.Field().String())
	return err == nil
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := configValidate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
