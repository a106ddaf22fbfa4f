package domain

import (
	"strings"

	"xrpl-payment-portal/pkg/apperror"
)

// SecretKeyWordCount is the number of words in a wallet secret key.
const SecretKeyWordCount = 24

// ValidateSecretKey trims raw and checks it holds exactly SecretKeyWordCount
// whitespace-delimited words. It returns the trimmed key.
func ValidateSecretKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", apperror.ErrEmptySecretKey()
	}
	if n := len(strings.Fields(key)); n != SecretKeyWordCount {
		return "", apperror.ErrSecretKeyWordCount(SecretKeyWordCount, n)
	}
	return key, nil
}
