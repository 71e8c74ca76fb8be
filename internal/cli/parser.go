package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vaultpass/pwgen-go/internal/model"
)

// ErrInvalidLength is returned when --length is missing its value, the value
// is not a base-10 integer, or it is less than 1.
var ErrInvalidLength = errors.New("invalid value for --length: must be a positive integer")

// UnrecognizedArgumentError reports a token that is neither a known flag nor
// the value consumed by --length.
type UnrecognizedArgumentError struct {
	Arg string
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("unrecognized argument: %s", e.Arg)
}

// Parse turns raw command-line tokens into Options. Tokens are processed left
// to right; boolean flags may repeat and the last --length wins. Parsing stops
// at the first invalid token.
func Parse(tokens []string) (model.Options, error) {
	opts := model.DefaultOptions()

	for i := 0; i < len(tokens); i++ {
		switch arg := tokens[i]; arg {
		case "--help":
			opts.Help = true
		case "--length":
			if i+1 >= len(tokens) {
				return model.Options{}, ErrInvalidLength
			}
			n, err := parseLength(tokens[i+1])
			if err != nil {
				return model.Options{}, err
			}
			opts.Length = n
			i++
		case "--uppercase":
			opts.Uppercase = true
		case "--numbers":
			opts.Digits = true
		case "--symbols":
			opts.Symbols = true
		default:
			return model.Options{}, &UnrecognizedArgumentError{Arg: arg}
		}
	}

	return opts, nil
}

func parseLength(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, v)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return n, nil
}
