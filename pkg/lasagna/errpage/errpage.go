// Package errpage produces the text of the built-in navigation error
// screen: the screen a shell shows when a location resolves to nothing or
// resolution itself fails.
//
// Text is localized through go-i18n. English ships as the default for every
// message; hosts override or translate by loading TOML message files into
// the bundle:
//
//	bundle := errpage.NewBundle()
//	if err := errpage.LoadOverrides(bundle, "active.it.toml"); err != nil { ... }
//	loc := errpage.NewLocalizer(bundle, "it", "en")
package errpage

import (
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/lasagna/pkg/lasagna"
)

var (
	titleMessage = &i18n.Message{
		ID:          "ErrorPageTitle",
		Description: "Heading of the navigation error screen",
		Other:       "Page Not Found",
	}

	routeNotFoundMessage = &i18n.Message{
		ID:          "RouteNotFound",
		Description: "Body text when a location matches no route",
		Other:       "no routes for location: {{.URI}}",
	}

	navigationFailedMessage = &i18n.Message{
		ID:          "NavigationFailed",
		Description: "Body text when route resolution fails with an error",
		Other:       "navigation failed: {{.Reason}}",
	}

	pressBackMessage = &i18n.Message{
		ID:          "PressBackToReturn",
		Description: "Footer hint when the stack can still pop",
		Other:       "Press B to go back",
	}

	atRootMessage = &i18n.Message{
		ID:          "NothingToGoBackTo",
		Description: "Footer hint when the error page is the whole stack",
		Other:       "Nothing to go back to",
	}
)

// NewBundle returns a message bundle with English defaults. TOML message
// files can be loaded into it for other languages.
func NewBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// LoadOverrides loads a TOML message file into the bundle. The file's
// language comes from its name ("active.it.toml").
func LoadOverrides(bundle *i18n.Bundle, path string) error {
	_, err := bundle.LoadMessageFile(path)
	return err
}

// NewLocalizer returns a localizer preferring langs in order.
func NewLocalizer(bundle *i18n.Bundle, langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Title returns the error screen heading.
func Title(loc *i18n.Localizer) string {
	return loc.MustLocalize(&i18n.LocalizeConfig{DefaultMessage: titleMessage})
}

// Text returns the error screen body for a failed match. A resolution that
// simply found no route reads differently from one that broke partway.
func Text(loc *i18n.Localizer, match *lasagna.Match) string {
	var routeErr *lasagna.RouteError
	if match != nil && errors.As(match.Err, &routeErr) && routeErr.Err == nil {
		return loc.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: routeNotFoundMessage,
			TemplateData:   map[string]string{"URI": routeErr.URI},
		})
	}

	reason := "unknown error"
	if match != nil && match.Err != nil {
		reason = match.Err.Error()
	}
	return loc.MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: navigationFailedMessage,
		TemplateData:   map[string]string{"Reason": reason},
	})
}

// BackHint returns the footer hint matching whether the stack can pop.
func BackHint(loc *i18n.Localizer, canPop bool) string {
	if canPop {
		return loc.MustLocalize(&i18n.LocalizeConfig{DefaultMessage: pressBackMessage})
	}
	return loc.MustLocalize(&i18n.LocalizeConfig{DefaultMessage: atRootMessage})
}
