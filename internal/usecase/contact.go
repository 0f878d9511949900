package usecase

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/example/storefront-service/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 ().-]{6,24}$`)

// ContactValidator checks the contact block of a quote request.
type ContactValidator struct {
	v *validator.Validate
}

func NewContactValidator() *ContactValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validPhone(fl.Field().String())
	})
	return &ContactValidator{v: v}
}

// Validate returns *domain.InvalidContactError listing every failing field.
func (c *ContactValidator) Validate(ci domain.ContactInfo) error {
	err := c.v.Struct(ci)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate contact")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &domain.InvalidContactError{Fields: fields}
}

func validPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 6
}

func normalizeContact(ci domain.ContactInfo) domain.ContactInfo {
	ci.FirstName = strings.TrimSpace(ci.FirstName)
	ci.LastName = strings.TrimSpace(ci.LastName)
	ci.CompanyName = strings.TrimSpace(ci.CompanyName)
	ci.Phone = strings.TrimSpace(ci.Phone)
	ci.Email = strings.TrimSpace(ci.Email)
	ci.OrderNotes = strings.TrimSpace(ci.OrderNotes)
	return ci
}
