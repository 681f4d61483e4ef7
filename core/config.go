package core

import (
	"strings"
	"time"
)

// LanguagePlaceholder is substituted with the language code in Config.Endpoint.
const LanguagePlaceholder = "{language}"

const (
	defaultLanguage  = "en"
	defaultEndpoint  = "https://" + LanguagePlaceholder + ".wikipedia.org/api/rest_v1/page/random/summary"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "wikipage/1.0 (https://github.com/gaurav-prasanna/wikipage)"
)

// Config holds the fixed settings of a run. Only Language is exposed as a flag.
type Config struct {
	Language  string
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns the configuration used by the command.
func DefaultConfig() Config {
	return Config{
		Language:  defaultLanguage,
		Endpoint:  defaultEndpoint,
		Timeout:   defaultTimeout,
		UserAgent: defaultUserAgent,
	}
}

// SummaryURL returns the random summary endpoint for the given language edition.
// The code is passed through as-is; an unknown edition fails remotely.
func (c Config) SummaryURL(language string) string {
	return strings.ReplaceAll(c.Endpoint, LanguagePlaceholder, language)
}
