package utils

import (
	"crypto/rand"
	"math/big"
)

const accountNumberLength = 16

// ibanBankCode is the fixed 4-digit bank code embedded in generated IBANs.
const ibanBankCode = "0123"

// GenerateAccountNumber returns a random 16-digit display identifier.
// Uniqueness is enforced by the database index; callers retry on collision.
func GenerateAccountNumber() (string, error) {
	return randomDigits(accountNumberLength)
}

// GenerateIBAN derives the IBAN shown on the profile screen from the
// account number.
func GenerateIBAN(accountNumber string) string {
	return "PK" + ibanBankCode + accountNumber
}

func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
