package css

import "fmt"

// ParseError is returned by the tokenizer and value parsers for a single
// malformed value. Callers collect these with go.uber.org/multierr instead
// of failing the whole cascade (spec.md §4.1, §7).
type ParseError struct {
	Pos   int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("css: %s (at %q, byte %d)", e.Msg, e.Token, e.Pos)
}
