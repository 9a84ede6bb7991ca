package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to labels shown to API clients.
var FieldLabels = map[string]string{
	// Mediator fields
	"Name":   "Name",
	"Email":  "Email",
	"Phone":  "Phone number",
	"Region": "Region",
	"Status": "Status",

	// Profile fields
	"FullName":      "Full name",
	"CompanyName":   "Company name",
	"WalletAddress": "Wallet address",
	"Skills":        "Skills",
	"Website":       "Website",

	// Job posting fields
	"Title":        "Title",
	"Description":  "Description",
	"Location":     "Location",
	"Latitude":     "Latitude",
	"Longitude":    "Longitude",
	"RadiusMeters": "Radius (meters)",
	"SalaryMin":    "Minimum salary",
	"SalaryMax":    "Maximum salary",
	"PaymentWei":   "Payment (wei)",
	"MediatorID":   "Mediator",
	"Tags":         "Tags",

	// Chain fields
	"Device":    "Device address",
	"Worker":    "Worker address",
	"AmountWei": "Amount (wei)",
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "gtefield":
		return fmt.Sprintf("%s: must not be less than %s", label, getFieldLabel(param))
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "uuid":
		return fmt.Sprintf("%s: must be a UUID", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation (. ' - /) are allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji", label)
	case "wallet_address":
		return fmt.Sprintf("%s: must be a 0x-prefixed 20-byte hex address", label)
	case "wei":
		return fmt.Sprintf("%s: must be a non-negative integer amount in wei", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
