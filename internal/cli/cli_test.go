package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

const passwordPrefix = "Your generated password is: "

type fixedSource struct {
	values []int
	pos    int
	err    error
}

func (s *fixedSource) IntN(n int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v, nil
}

func run(t *testing.T, src crypto.RandomSource, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run("pwgen", args, &stdout, &stderr, src)
	return code, stdout.String(), stderr.String()
}

func generatedPassword(t *testing.T, stdout string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(stdout, passwordPrefix), "unexpected stdout %q", stdout)
	require.True(t, strings.HasSuffix(stdout, "\n"), "stdout should end with a newline")
	return strings.TrimSuffix(strings.TrimPrefix(stdout, passwordPrefix), "\n")
}

func TestRunGeneratesPassword(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		length  int
		charset string
	}{
		{name: "defaults", length: 8, charset: crypto.LowercaseChars},
		{name: "length 12", args: []string{"--length", "12"}, length: 12, charset: crypto.LowercaseChars},
		{
			name:    "length 10 uppercase",
			args:    []string{"--length", "10", "--uppercase"},
			length:  10,
			charset: crypto.LowercaseChars + crypto.UppercaseChars,
		},
		{
			name:    "numbers symbols",
			args:    []string{"--numbers", "--symbols"},
			length:  8,
			charset: crypto.LowercaseChars + crypto.DigitChars + crypto.SymbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, crypto.SecureSource{}, tt.args...)
			require.Equal(t, ExitOK, code)
			assert.Empty(t, stderr)

			password := generatedPassword(t, stdout)
			assert.Len(t, password, tt.length)
			for _, ch := range password {
				assert.Contains(t, tt.charset, string(ch))
			}
		})
	}
}

func TestRunIsDeterministicWithFixedSource(t *testing.T) {
	code, stdout, _ := run(t, &fixedSource{values: []int{7, 4, 11, 11, 14}}, "--length", "5")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "Your generated password is: hello\n", stdout)
}

func TestRunHelp(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"--length", "12", "--help"},
		{"--help", "--numbers", "--symbols"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			src := &fixedSource{err: errors.New("source must not be used")}
			code, stdout, stderr := run(t, src, args...)
			require.Equal(t, ExitOK, code)
			assert.Empty(t, stderr)
			assert.Contains(t, stdout, "Usage: pwgen [options]")
			assert.Contains(t, stdout, "--length <num>")
			assert.Contains(t, stdout, "pwgen --numbers --symbols")
			assert.NotContains(t, stdout, passwordPrefix)
		})
	}
}

func TestRunInvalidLength(t *testing.T) {
	for _, args := range [][]string{
		{"--length", "0"},
		{"--length", "-5"},
		{"--length", "abc"},
		{"--length"},
		{"--help", "--length", "0"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, stdout, stderr := run(t, crypto.SecureSource{}, args...)
			assert.Equal(t, ExitError, code)
			assert.Empty(t, stdout)
			assert.Equal(t, "Error: Invalid value for --length. It must be a positive integer.\n", stderr)
		})
	}
}

func TestRunUnrecognizedArgument(t *testing.T) {
	code, stdout, stderr := run(t, crypto.SecureSource{}, "--uppercase", "--foo")
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Unrecognized argument: --foo\nUse --help for usage information.\n", stderr)
}

func TestRunGeneratorFailure(t *testing.T) {
	tests := []struct {
		name   string
		src    crypto.RandomSource
		args   []string
		detail string
	}{
		{
			name:   "source failure",
			src:    &fixedSource{err: errors.New("entropy exhausted")},
			detail: "entropy exhausted",
		},
		{
			name:   "length above generator maximum",
			src:    crypto.SecureSource{},
			args:   []string{"--length", "9000000000000000000"},
			detail: crypto.ErrLengthExceedsMax.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.src, tt.args...)
			assert.Equal(t, ExitError, code)
			assert.Empty(t, stdout)
			assert.Equal(t, "An error occurred while generating the password: "+tt.detail+"\n", stderr)
		})
	}
}
