package config

import (
	"strings"
	"testing"

	"github.com/exeal/ascent/text"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Document.Newline() != text.LineFeed {
		t.Errorf("expected LF default, got %v", cfg.Document.Newline())
	}
	if cfg.Search.StoredStrings != 16 {
		t.Errorf("expected 16 stored strings, got %d", cfg.Search.StoredStrings)
	}
	if !cfg.Search.CaseSensitive {
		t.Error("expected case-sensitive default")
	}
}

func TestLoad(t *testing.T) {
	src := `
[document]
default-newline = "crlf"

[search]
stored-strings = 8
whole-match = "word"
case-sensitive = false

[content-types.css]
identifier-start = "-"
identifier-continue = "-"
`
	cfg, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Document.Newline() != text.CarriageReturnLineFeed {
		t.Errorf("expected CRLF, got %v", cfg.Document.Newline())
	}
	if cfg.Search.StoredStrings != 8 || cfg.Search.WholeMatch != "word" || cfg.Search.CaseSensitive {
		t.Errorf("search settings not applied: %+v", cfg.Search)
	}
	info := NewContentTypeInformation(cfg)
	if !info.IdentifierSyntax("css").IsIdentifierStart('-') {
		t.Error("expected '-' as an identifier start in css")
	}
	if info.IdentifierSyntax("text").IsIdentifierStart('-') {
		t.Error("'-' must not leak into other content types")
	}
}

func TestLoadBadTOML(t *testing.T) {
	if _, err := Load(strings.NewReader("not [valid")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(strings.NewReader("[search]\nstored-strings = 4\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Search.StoredStrings != 4 {
		t.Errorf("expected 4, got %d", cfg.Search.StoredStrings)
	}
	if cfg.Document.Newline() != text.LineFeed {
		t.Error("unset sections keep their defaults")
	}
}
