package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

// BookingCodeLength is the fixed length of guest-facing booking codes.
const BookingCodeLength = 7

// BookingCodeAlphabet is the Bitcoin-style base58 alphabet: 58 symbols with
// the visually ambiguous 0, O, I and l left out.
const BookingCodeAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// GenerateBookingCode draws n characters from the base58 alphabet using
// crypto/rand with a big.Int draw per character to avoid modulo bias.
func GenerateBookingCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(BookingCodeAlphabet)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(BookingCodeAlphabet[num.Int64()])
	}
	return sb.String(), nil
}

// EnvOrDefault returns the ENV value or the fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// IsDuplicateKeyError reports whether err looks like a uniqueness-constraint
// violation, across the mysql and sqlite dialects we run against.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") ||
		strings.Contains(lc, "unique") ||
		strings.Contains(lc, "constraint")
}
