package catalog

import (
	"strings"
	"unicode/utf8"

	"bookstore/internal/pkg/errs"
)

func requiredText(param, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	return optionalText(param, value, maxLen)
}

func optionalText(param, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return "", errs.NewValueIsOutOfRangeError(param+" length", utf8.RuneCountInString(value), 0, maxLen)
	}
	return value, nil
}
