package restaurant

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"fooddelivery/internal/pkg/errs"
)

func requiredText(paramName, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return optionalText(paramName, value, maxLen)
}

func optionalText(paramName, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if n := utf8.RuneCountInString(value); maxLen > 0 && n > maxLen {
		return "", errs.NewValueIsOutOfRangeError(paramName+" length", n, 0, maxLen)
	}
	return value, nil
}

func emailAddress(value string) (string, error) {
	value, err := requiredText("email", value, 254)
	if err != nil {
		return "", err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", value))
	}
	return value, nil
}
