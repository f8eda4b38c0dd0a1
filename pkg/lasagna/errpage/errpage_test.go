package errpage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/lasagna/pkg/lasagna"
)

func TestEnglishDefaults(t *testing.T) {
	loc := NewLocalizer(NewBundle(), "en")

	if got := Title(loc); got != "Page Not Found" {
		t.Errorf("Title() = %q, want Page Not Found", got)
	}

	notFound := &lasagna.Match{Err: lasagna.NewRouteError("/nope", nil)}
	if got, want := Text(loc, notFound), "no routes for location: /nope"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	failed := &lasagna.Match{Err: errors.New("resolver exploded")}
	if got, want := Text(loc, failed), "navigation failed: resolver exploded"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextWithoutError(t *testing.T) {
	loc := NewLocalizer(NewBundle(), "en")

	want := "navigation failed: unknown error"
	if got := Text(loc, nil); got != want {
		t.Errorf("Text(nil) = %q, want %q", got, want)
	}
	if got := Text(loc, &lasagna.Match{}); got != want {
		t.Errorf("Text(match without error) = %q, want %q", got, want)
	}
}

func TestBackHint(t *testing.T) {
	loc := NewLocalizer(NewBundle(), "en")

	if got := BackHint(loc, true); got != "Press B to go back" {
		t.Errorf("BackHint(true) = %q, want Press B to go back", got)
	}
	if got := BackHint(loc, false); got != "Nothing to go back to" {
		t.Errorf("BackHint(false) = %q, want Nothing to go back to", got)
	}
}

const italianMessages = `
[ErrorPageTitle]
other = "Pagina non trovata"
`

// A translated message wins for its language; untranslated ones fall back to
// the English defaults.
func TestTranslationOverride(t *testing.T) {
	bundle := NewBundle()
	if _, err := bundle.ParseMessageFileBytes([]byte(italianMessages), "active.it.toml"); err != nil {
		t.Fatalf("ParseMessageFileBytes() error = %v", err)
	}

	loc := NewLocalizer(bundle, "it", "en")

	if got := Title(loc); got != "Pagina non trovata" {
		t.Errorf("Title() = %q, want Pagina non trovata", got)
	}

	notFound := &lasagna.Match{Err: lasagna.NewRouteError("/x", nil)}
	if got, want := Text(loc, notFound), "no routes for location: /x"; got != want {
		t.Errorf("untranslated Text() = %q, want English fallback %q", got, want)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active.it.toml")
	if err := os.WriteFile(path, []byte(italianMessages), 0o644); err != nil {
		t.Fatal(err)
	}

	bundle := NewBundle()
	if err := LoadOverrides(bundle, path); err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}

	loc := NewLocalizer(bundle, "it")
	if got := Title(loc); got != "Pagina non trovata" {
		t.Errorf("Title() = %q, want Pagina non trovata", got)
	}
}
