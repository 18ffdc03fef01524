package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/exeal/ascent/text"
)

// Config carries the tunable kernel settings. Every field has a working
// default, so an absent file or section leaves the kernel usable.
type Config struct {
	Document DocumentConfig `toml:"document"`
	Search   SearchConfig   `toml:"search"`

	// ContentTypes widens the identifier syntax per content type, e.g.
	// making '-' a word character inside CSS partitions.
	ContentTypes map[string]ContentTypeConfig `toml:"content-types"`
}

// DocumentConfig are the document-level settings.
type DocumentConfig struct {
	// DefaultNewline names the terminator for new content: "lf", "cr",
	// "crlf", "nel", "ls" or "ps".
	DefaultNewline string `toml:"default-newline"`
}

// SearchConfig are the searcher settings.
type SearchConfig struct {
	// StoredStrings bounds the pattern and replacement histories.
	StoredStrings int `toml:"stored-strings"`
	// WholeMatch selects the default match constraint: "code-unit",
	// "grapheme" or "word".
	WholeMatch string `toml:"whole-match"`
	// CaseSensitive is the default literal-pattern case sensitivity.
	CaseSensitive bool `toml:"case-sensitive"`
}

// ContentTypeConfig widens the identifier syntax of one content type.
type ContentTypeConfig struct {
	// IdentifierStart lists extra identifier-start characters.
	IdentifierStart string `toml:"identifier-start"`
	// IdentifierContinue lists extra identifier-continue characters.
	IdentifierContinue string `toml:"identifier-continue"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Document: DocumentConfig{DefaultNewline: "lf"},
		Search: SearchConfig{
			StoredStrings: 16,
			WholeMatch:    "code-unit",
			CaseSensitive: true,
		},
	}
}

// Load reads TOML settings from r on top of the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Newline resolves the configured default terminator.
func (c DocumentConfig) Newline() text.Newline {
	switch c.DefaultNewline {
	case "cr":
		return text.CarriageReturn
	case "crlf":
		return text.CarriageReturnLineFeed
	case "nel":
		return text.NextLine
	case "ls":
		return text.LineSeparator
	case "ps":
		return text.ParagraphSeparator
	default:
		return text.LineFeed
	}
}

// IdentifierSyntax builds the widened syntax for one content type.
func (c ContentTypeConfig) IdentifierSyntax() text.IdentifierSyntax {
	syntax := text.DefaultIdentifierSyntax()
	for _, r := range c.IdentifierStart {
		syntax.AddStart(text.CodePoint(r))
	}
	for _, r := range c.IdentifierContinue {
		syntax.AddContinue(text.CodePoint(r))
	}
	return syntax
}

// ContentTypeInformation adapts the configuration to the kernel's
// provider interface.
type ContentTypeInformation struct {
	cfg Config
}

// NewContentTypeInformation wraps cfg.
func NewContentTypeInformation(cfg Config) *ContentTypeInformation {
	return &ContentTypeInformation{cfg: cfg}
}

// IdentifierSyntax returns the widened syntax for contentType, or the
// default when the type is not configured.
func (p *ContentTypeInformation) IdentifierSyntax(contentType string) text.IdentifierSyntax {
	if ct, ok := p.cfg.ContentTypes[contentType]; ok {
		return ct.IdentifierSyntax()
	}
	return text.DefaultIdentifierSyntax()
}
