package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
)

var ErrLengthTooLong = errors.New("password length exceeds the configured maximum")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src       crypto.RandomSource
	maxLength int
}

// NewGeneratorService creates a new GeneratorService drawing from src.
// A non-positive maxLength disables the upper bound.
func NewGeneratorService(src crypto.RandomSource, maxLength int) *GeneratorService {
	return &GeneratorService{src: src, maxLength: maxLength}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = model.DefaultLength
	}
	if length < 1 {
		return model.GenerateResponse{}, crypto.ErrNonPositiveLength
	}
	if s.maxLength > 0 && length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	password, err := crypto.Generate(length, req.Uppercase, req.Numbers, req.Symbols, s.src)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:     password,
		Length:       len(password),
		AlphabetSize: len(crypto.Alphabet(req.Uppercase, req.Numbers, req.Symbols)),
	}, nil
}
