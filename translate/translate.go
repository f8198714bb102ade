// Package translate localizes diagnostic text produced by starbridge.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("starbridge: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the printer used by From. Intended for tests and for
// hosts that pick a language explicitly rather than from the environment.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
//
// Only diagnostics go through here. Anything parsed by tooling must use fmt,
// since the printer applies locale number formatting.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
