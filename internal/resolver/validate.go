package resolver

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f == math.Trunc(f)
		})

		validateInst = v
	})

	return validateInst
}

// tag builds the validator rule for one parameter.
func (p Param) tag() string {
	tag := "gte=" + formatBound(p.Min) + ",lte=" + formatBound(p.Max)
	if p.Class == ClassCount || p.Class == ClassFlag {
		tag += ",whole"
	}
	return tag
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate checks base against its kind's profile and returns that profile.
// Unknown kinds, unknown keys, non-finite, negative or out-of-range values
// fail with motion.ErrInvalidConfig.
func (r *Resolver) Validate(base motion.EffectConfig) (Profile, error) {
	profile, ok := r.profiles[base.Kind()]
	if !ok {
		return Profile{}, motion.NewConfigError(fmt.Sprintf("unknown component kind %q", base.Kind()), map[string]interface{}{
			"kind": base.Kind(),
		})
	}

	v := validatorInstance()
	for _, key := range base.Keys() {
		value, _ := base.Get(key)
		param, known := profile.Params[key]
		if !known {
			return Profile{}, motion.NewConfigError(fmt.Sprintf("%s does not accept parameter %q", profile.Kind, key), map[string]interface{}{
				"kind":  profile.Kind,
				"param": key,
			})
		}

		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Profile{}, paramError(profile, key, value, "must be a finite number", nil)
		}
		if param.Class == ClassCount && value < 0 {
			return Profile{}, paramError(profile, key, value, "count must not be negative", nil)
		}
		if err := v.Var(value, param.tag()); err != nil {
			return Profile{}, paramError(profile, key, value, describeRange(param, err), err)
		}
	}

	return profile, nil
}

func describeRange(param Param, err error) string {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 && ves[0].Tag() == "whole" {
		return "must be a whole number"
	}
	return fmt.Sprintf("must be within [%s, %s]", formatBound(param.Min), formatBound(param.Max))
}

func paramError(profile Profile, key string, value float64, reason string, cause error) error {
	err := motion.NewConfigError(fmt.Sprintf("%s.%s=%g %s", profile.Kind, key, value, reason), map[string]interface{}{
		"kind":  profile.Kind,
		"param": key,
		"value": value,
	})
	err.Cause = cause
	return err
}
