package automaton

// Config configures textual pattern compilation.
type Config struct {
	// Alphabet is the alphabet of every atom built from a pattern. The
	// wildcard matches exactly these symbols. A literal outside it extends
	// the alphabet of its own atom.
	//
	// Default: 'a'-'z'
	Alphabet Alphabet

	// Wildcard is the pattern rune matching any alphabet symbol.
	//
	// Default: '.'
	Wildcard rune

	// Repeat is the zero-or-more operator applied to the preceding atom.
	//
	// Default: '*'
	Repeat rune
}

// DefaultConfig returns the configuration used by NewNFAFromPattern.
func DefaultConfig() Config {
	return Config{
		Alphabet: LowerCase(),
		Wildcard: '.',
		Repeat:   '*',
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Alphabet.validate(); err != nil {
		return &Error{
			Kind:    InvalidConfig,
			Message: "invalid alphabet",
			State:   StateNotFound,
			Cause:   err,
		}
	}
	if c.Wildcard == c.Repeat {
		return &Error{
			Kind:    InvalidConfig,
			Message: "wildcard and repeat operator must differ",
			State:   StateNotFound,
		}
	}
	if c.Wildcard < 0 || c.Repeat < 0 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "wildcard and repeat operator must be valid runes",
			State:   StateNotFound,
		}
	}
	return nil
}

// WithAlphabet returns a new config with the specified alphabet
func (c Config) WithAlphabet(a Alphabet) Config {
	c.Alphabet = a.Clone()
	return c
}

// WithWildcard returns a new config with the specified wildcard rune
func (c Config) WithWildcard(r rune) Config {
	c.Wildcard = r
	return c
}

// WithRepeat returns a new config with the specified repeat operator
func (c Config) WithRepeat(r rune) Config {
	c.Repeat = r
	return c
}
