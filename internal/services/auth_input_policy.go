package services

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrRegistrationInvalid    = errors.New("registration input invalid")
)

const minPasswordLength = 8

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// ValidateRegistrationInput checks the register payload before any storage
// work. Returns a client-facing message, empty when the input is fine.
func ValidateRegistrationInput(name string, emailRaw string, password string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if NormalizeAuthEmail(emailRaw) == "" {
		return "invalid email"
	}
	if len(strings.TrimSpace(password)) < minPasswordLength {
		return "password must be at least 8 characters"
	}
	return ""
}
