package rare

// Config controls the optional performance features of a compiled
// Engine. The only optional feature this engine has is literal
// prefiltering; there is no DFA stage to size a cache for or tune a
// determinization limit on.
type Config struct {
	// EnablePrefilter builds an Aho-Corasick automaton over the
	// pattern's literal alternatives, when the pattern is shaped so
	// that literal extraction applies (see internal/literal.Extract).
	// When false, or when the pattern does not reduce to a literal
	// alternation, Engine.Prefilter returns nil.
	//
	// Default: true
	EnablePrefilter bool

	// MinPrefilterLiteralLen is the shortest literal branch that is
	// still worth feeding to the prefilter. A pattern with any literal
	// branch shorter than this is left unfiltered, since a
	// very short literal (e.g. a single common letter) rejects too few
	// candidate lines to be worth the automaton's overhead.
	//
	// Default: 1
	MinPrefilterLiteralLen int
}

// DefaultConfig returns a Config with sensible defaults: prefiltering
// enabled, accepting literals of any non-empty length.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:        true,
		MinPrefilterLiteralLen: 1,
	}
}
