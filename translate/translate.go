// Package translate formats user visible messages for the local language.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.Mutex
	printer *message.Printer
)

// detect picks a printer for the user's locales, falling back to en-US.
func detect() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ipvm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the detected locale with a BCP 47 tag.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	mutex.Lock()
	defer mutex.Unlock()
	printer = message.NewPrinter(lang)

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.Lock()
	if printer == nil {
		printer = detect()
	}
	p := printer
	mutex.Unlock()

	return p.Sprintf(key, args...)
}

// Message is an error whose text is translated each time it is formatted,
// so it follows a later SetLanguage.
type Message struct {
	key string
}

// Error creates a sentinel error with an en-US message key.
func Error(key string) error {
	return &Message{key: key}
}

func (m *Message) Error() string {
	return From(m.key)
}
