package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode builds an n-character confirmation code (A-Z0-9).
// Uses crypto/rand with rand.Int to avoid modulo bias.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// NewConfirmationCode returns a formatted "XXXX-XXXX" code for a new
// reservation.
func NewConfirmationCode() (string, error) {
	raw, err := GenerateCode(8)
	if err != nil {
		return "", err
	}
	return raw[:4] + "-" + raw[4:], nil
}

// IsValidConfirmationCodeFormat accepts "ABCDEFGH" or "ABCD-EFGH".
func IsValidConfirmationCodeFormat(code string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	c = strings.ReplaceAll(c, "-", "")
	if len(c) != 8 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if !strings.ContainsRune(codeCharset, rune(c[i])) {
			return false
		}
	}
	return true
}
