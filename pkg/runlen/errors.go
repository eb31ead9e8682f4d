package runlen

import "fmt"

// ConfigError reports a malformed scan configuration: a stop-codon or gap
// symbol longer than a single character.
type ConfigError struct {
	Param string // "stop-codon" or "gap"
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be empty or a single character, got %q", e.Param, e.Value)
}

// InputError reports sequence content that is not a letter and not one of
// the declared stop-codon/gap symbols. Pos is 1-based.
type InputError struct {
	Char byte
	Pos  int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid character %q at %d; allowed: letters plus the declared stop-codon/gap symbols", e.Char, e.Pos)
}
