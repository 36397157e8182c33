// Package translate formats user visible text through an x/text message
// printer matched to the locales of the current user.
package translate

import (
	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

var getLocales = locale.GetLocales

func init() {
	register()

	printer = message.NewPrinter(message.MatchLanguage(userLocales()...))
}

// userLocales returns the locales of the current user, or en-US.
func userLocales() (locales []string) {
	locales, err := getLocales()
	if err != nil {
		log.Warnf("translate: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// SetLanguage overrides the detected locale.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(message.MatchLanguage(tag.String()))
}

// Parse parses a BCP 47 tag, as given on the command line.
func Parse(lang string) (tag language.Tag, err error) {
	return language.Parse(lang)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
