package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()-_=+[]{};:,.<>?"

	// MaxLength bounds a single password so the output buffer can always be allocated.
	MaxLength = 1 << 20
)

var (
	ErrNonPositiveLength = errors.New("password length must be at least 1")
	ErrLengthExceedsMax  = fmt.Errorf("password length must be at most %d", MaxLength)
	ErrEmptyAlphabet     = errors.New("no valid characters specified for password generation")
	ErrIndexOutOfRange   = errors.New("random source returned an index out of range")
)

// RandomSource yields independent, uniformly distributed indices.
type RandomSource interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) (int, error)
}

// SecureSource draws indices from crypto/rand.
type SecureSource struct{}

// IntN implements RandomSource.
func (SecureSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Alphabet returns the characters eligible for a password. Lowercase letters
// are always present, followed by the optional classes in a fixed order.
func Alphabet(uppercase, digits, symbols bool) string {
	alphabet := LowercaseChars
	if uppercase {
		alphabet += UppercaseChars
	}
	if digits {
		alphabet += DigitChars
	}
	if symbols {
		alphabet += SymbolChars
	}
	return alphabet
}

// Generate creates a random password of exactly length characters. Each
// position is drawn independently from the alphabet selected by the flags.
func Generate(length int, uppercase, digits, symbols bool, src RandomSource) (string, error) {
	return generateFrom(Alphabet(uppercase, digits, symbols), length, src)
}

func generateFrom(alphabet string, length int, src RandomSource) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	if length < 1 {
		return "", ErrNonPositiveLength
	}
	if length > MaxLength {
		return "", ErrLengthExceedsMax
	}

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := src.IntN(len(alphabet))
		if err != nil {
			return "", fmt.Errorf("drawing character %d: %w", i, err)
		}
		if idx < 0 || idx >= len(alphabet) {
			return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(alphabet))
		}
		sb.WriteByte(alphabet[idx])
	}

	return sb.String(), nil
}
