package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/printflow/printflow/internal/client/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// nomarkup rejects anything that looks like an HTML/script tag. The
	// server stores what it receives, so the client refuses the obvious
	// injection shapes up front.
	_ = v.RegisterValidation("nomarkup", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "<>")
	})

	// personname limits names to letters, spaces, hyphens and apostrophes.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
				return false
			}
		}
		return true
	})

	return v
}

type loginInput struct {
	Email    string `validate:"required,max=255,email,nomarkup"`
	Password string `validate:"required,max=128"`
}

type registerInput struct {
	Name     string `validate:"required,min=2,max=100,personname"`
	Email    string `validate:"required,max=255,email,nomarkup"`
	Password string `validate:"required,min=8,max=128"`
}

// validateLoginInput returns the message for the first failing field, or "".
func validateLoginInput(email, password string) string {
	err := validate.Struct(loginInput{Email: email, Password: password})
	if err == nil {
		return ""
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid input"
	}

	fe := errs[0]
	switch fe.Field() {
	case "Email":
		switch fe.Tag() {
		case "required":
			return "Email is required"
		case "max":
			return "Email must be at most 255 characters"
		default:
			return "Please enter a valid email address"
		}
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at most 128 characters"
	}
	return "Invalid input"
}

// validateRegisterInput validates registration fields, including password
// strength, and returns the first failing message or "".
func validateRegisterInput(name, email, password string, role models.Role) string {
	err := validate.Struct(registerInput{Name: name, Email: email, Password: password})
	if err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) || len(errs) == 0 {
			return "Invalid input"
		}

		fe := errs[0]
		switch fe.Field() {
		case "Name":
			switch fe.Tag() {
			case "required":
				return "Name is required"
			case "min", "max":
				return "Name must be between 2 and 100 characters"
			default:
				return "Name may only contain letters, spaces, hyphens and apostrophes"
			}
		case "Email":
			switch fe.Tag() {
			case "required":
				return "Email is required"
			case "max":
				return "Email must be at most 255 characters"
			default:
				return "Please enter a valid email address"
			}
		case "Password":
			switch fe.Tag() {
			case "required":
				return "Password is required"
			default:
				return "Password must be between 8 and 128 characters"
			}
		}
		return "Invalid input"
	}

	if msg := passwordStrength(password); msg != "" {
		return msg
	}

	switch role {
	case "", models.RoleAdmin, models.RoleManager, models.RoleStaff:
		return ""
	}
	return "Role must be admin, manager or staff"
}

// passwordStrength requires an upper-case letter, a lower-case letter, a
// digit, and a special character.
func passwordStrength(password string) string {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	switch {
	case !upper:
		return "Password must contain an upper-case letter"
	case !lower:
		return "Password must contain a lower-case letter"
	case !digit:
		return "Password must contain a digit"
	case !special:
		return "Password must contain a special character"
	}
	return ""
}
