package billing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("dp2", func(fl validator.FieldLevel) bool {
		return twoPlaces(fl.Field().Float())
	})
	return v
}

// ValidateTaxSettings checks that every rate lies in [0, 100] with at most
// two decimal places
func ValidateTaxSettings(s TaxSettings) ValidationResult {
	return toResult(structErrors(s))
}

// ValidateProfile checks a profile before it is stored. Evaluation itself
// never rejects a profile.
func ValidateProfile(p CommissionProfile) ValidationResult {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if len(p.QualifyingItems) == 0 {
		errs = append(errs, "at least one qualifying item is required")
	}
	for _, k := range p.QualifyingItems {
		if !k.Valid() {
			errs = append(errs, fmt.Sprintf("qualifying item %q is not recognised", k.String()))
		}
	}

	switch rule := p.Rule.(type) {
	case TargetRule:
		if len(rule.Tiers) == 0 {
			errs = append(errs, "target based profiles need at least one tier")
		}
		for i, t := range rule.Tiers {
			for _, msg := range structErrors(t) {
				errs = append(errs, fmt.Sprintf("tier %d: %s", i+1, msg))
			}
			if t.CalculateBy == enum.CalculateByPercent && t.Value > 100 {
				errs = append(errs, fmt.Sprintf("tier %d: value must be at most 100", i+1))
			}
			if i > 0 && t.From < rule.Tiers[i-1].From {
				errs = append(errs, fmt.Sprintf("tier %d: tiers must be ordered by from ascending", i+1))
			}
		}
	case ItemRule:
		if len(rule.Rates) == 0 {
			errs = append(errs, "item based profiles need at least one item rate")
		}
		for i, r := range rule.Rates {
			if !r.ItemType.Valid() {
				errs = append(errs, fmt.Sprintf("item rate %d: item type is not recognised", i+1))
			}
			for _, msg := range structErrors(r) {
				errs = append(errs, fmt.Sprintf("item rate %d: %s", i+1, msg))
			}
			if r.CalculateBy == enum.CalculateByPercent && r.Rate > 100 {
				errs = append(errs, fmt.Sprintf("item rate %d: rate must be at most 100", i+1))
			}
		}
	default:
		errs = append(errs, "profile type must be target_based or item_based")
	}

	return toResult(errs)
}

func structErrors(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return msgs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), strings.ToLower(fe.Param()))
	case "dp2":
		return fmt.Sprintf("%s must have at most 2 decimal places", fe.Field())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func toResult(errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
