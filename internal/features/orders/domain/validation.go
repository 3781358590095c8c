package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationIssue describes why a feed element was rejected.
type ValidationIssue struct {
	// Index is the position of the element in the feed array.
	Index int `json:"index"`
	// OrderID is the coerced id of the element, possibly empty.
	OrderID string `json:"orderId,omitempty"`
	// Problems lists the failed rules as "field: rule".
	Problems []string `json:"problems"`
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("order #%d (%q): %s", i.Index, i.OrderID, strings.Join(i.Problems, "; "))
}

// Validator checks normalized orders against the order schema.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the order-specific rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return OrderStatus(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

// Validate returns the list of failed rules for o, or nil when o is valid.
func (v *Validator) Validate(o Order) []string {
	err := v.validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return problems
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Order.")
	switch fe.Tag() {
	case "required":
		return field + ": must be a non-empty string"
	case "ymd":
		return fmt.Sprintf("%s: %q is not a YYYY-MM-DD date", field, fe.Value())
	case "orderstatus":
		return fmt.Sprintf("%s: %q is not a known status", field, fe.Value())
	case "min":
		return field + ": must contain at least one item"
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}
