package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// max counts runes; bcrypt counts bytes.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

type credentials struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,maxbytes=72"`
}

// newCredentials normalizes the email and checks both fields, reporting each
// failed field as an errs.ValueIsInvalidError.
func newCredentials(email, password string) (credentials, error) {
	c := credentials{Email: user.NormalizeEmail(email), Password: password}

	err := validate.Struct(c)
	if err == nil {
		return c, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return credentials{}, err
	}

	joined := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
			strings.ToLower(fe.Field()),
			fmt.Errorf("failed %q rule", ruleText(fe)),
		))
	}
	return credentials{}, errors.Join(joined...)
}

func ruleText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
