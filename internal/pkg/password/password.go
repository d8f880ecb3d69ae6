package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Alphabet for temporary passwords. Ambiguous characters (0/O, 1/l/I)
// are left out because credentials travel over email and WhatsApp.
const tempAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const tempLength = 10

func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateTemporary returns a random first-access password.
func GenerateTemporary() (string, error) {
	result := make([]byte, tempLength)
	max := big.NewInt(int64(len(tempAlphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		result[i] = tempAlphabet[n.Int64()]
	}
	return string(result), nil
}
