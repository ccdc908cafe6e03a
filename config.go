package regfa

import "github.com/coregx/regfa/automaton"

// Config controls how patterns are compiled into a Regex.
//
// Example:
//
//	config := regfa.DefaultConfig()
//	config.Automaton = config.Automaton.WithAlphabet(automaton.Alphabet{automaton.Range('0', '9')})
//	re, err := regfa.CompileWithConfig("1.*0", config)
type Config struct {
	// Automaton configures the pattern syntax and alphabet.
	Automaton automaton.Config

	// UsePrefilter installs a start-symbol prefilter on the compiled DFA
	// when possible. Results are identical either way; only speed differs.
	//
	// Default: true
	UsePrefilter bool
}

// DefaultConfig returns a configuration with the 'a'-'z' alphabet, '.' as
// the wildcard, '*' as the repeat operator and the prefilter enabled.
func DefaultConfig() Config {
	return Config{
		Automaton:    automaton.DefaultConfig(),
		UsePrefilter: true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return c.Automaton.Validate()
}
