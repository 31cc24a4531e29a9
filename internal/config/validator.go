package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/resolver"
	"github.com/alexisbeaulieu97/cadence/internal/sequence"
	cadenceerrors "github.com/alexisbeaulieu97/cadence/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	elementIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || motion.Tier(value).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator used by the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateCatalog checks a catalog against the built-in component profiles.
func ValidateCatalog(cat *Catalog) error {
	return ValidateCatalogWith(cat, resolver.Default())
}

// ValidateCatalogWith performs schema and cross-field validation. Element
// parameters are checked against r; sequence steps must form an acyclic
// graph of uniquely named steps.
func ValidateCatalogWith(cat *Catalog, r *resolver.Resolver) error {
	if cat == nil {
		return cadenceerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(cat); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cat.Elements))
	for i, element := range cat.Elements {
		if _, exists := seen[element.ID]; exists {
			return cadenceerrors.NewValidationError(fieldFor("elements", i, "id"), fmt.Sprintf("duplicate element id %q", element.ID), nil)
		}
		seen[element.ID] = struct{}{}

		if _, err := r.Validate(element.Config()); err != nil {
			return cadenceerrors.NewValidationError(fieldFor("elements", i, "params"), domainMessage(err), err)
		}
	}

	seen = make(map[string]struct{}, len(cat.Sequences))
	for i, seq := range cat.Sequences {
		if _, exists := seen[seq.ID]; exists {
			return cadenceerrors.NewValidationError(fieldFor("sequences", i, "id"), fmt.Sprintf("duplicate sequence id %q", seq.ID), nil)
		}
		seen[seq.ID] = struct{}{}

		if _, err := sequence.BuildGraph(seq.SequenceSteps()); err != nil {
			return cadenceerrors.NewValidationError(fieldFor("sequences", i, "steps"), domainMessage(err), err)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into cadence validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return cadenceerrors.NewValidationError(field, msg, err)
	}

	return cadenceerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldFor(collection string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", collection, index, field)
}

func domainMessage(err error) string {
	var domainErr *motion.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return err.Error()
}
