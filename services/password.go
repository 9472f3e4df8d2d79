package services

import (
	"unicode"
	"unicode/utf8"
)

const minPasswordLength = 6

// ValidatePasswordStrength enforces the account password policy: at least six
// characters, one uppercase letter and one character that is neither a letter
// nor a digit.
func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasSpecial bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case !unicode.IsLetter(char) && !unicode.IsDigit(char):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
