package model

// DefaultLength is the password length used when none is requested.
const DefaultLength = 8

// Options is the validated configuration for a single generator run.
type Options struct {
	Length    int
	Uppercase bool
	Digits    bool
	Symbols   bool
	Help      bool
}

// DefaultOptions returns the configuration used when no flags are given:
// 8 characters drawn from lowercase letters only.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// GenerateRequest represents a password generation request.
// A zero Length selects DefaultLength; omitted character classes are excluded.
type GenerateRequest struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password     string `json:"password"`
	Length       int    `json:"length"`
	AlphabetSize int    `json:"alphabet_size"`
}
