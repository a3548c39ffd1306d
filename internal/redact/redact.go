// Package redact masks personal data and credentials before they reach log
// output. Member emails, passwords and local file paths (record imports) are
// the values it is concerned with.
package redact

import (
	"log/slog"
	"regexp"
	"strings"
)

// Placeholders substituted for redacted values.
const (
	Placeholder           = "[REDACTED]"
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

var (
	// Only key=value and key:value shapes; prose mentioning a password is
	// left readable.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)[=:]['"]?[^'"&\s]{3,}`)
	bcryptRegex   = regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`)
	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Order matters: credentials first so a path inside a password value is
	// not partially replaced.
	rules = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{passwordRegex, CredentialPlaceholder},
		{bcryptRegex, CredentialPlaceholder},
		{emailRegex, EmailPlaceholder},
		{unixPathRegex, PathPlaceholder},
		{winPathRegex, PathPlaceholder},
	}
)

// sensitiveKeys are attribute keys whose values are always replaced.
var sensitiveKeys = map[string]bool{
	"password":        true,
	"hashed_password": true,
	"email":           true,
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Attr is a slog.HandlerOptions.ReplaceAttr function. Attributes named
// after a sensitive field are masked entirely; other string and error
// values are scrubbed with String.
func Attr(_ []string, a slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, Placeholder)
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); s != String(s) {
			return slog.String(a.Key, String(s))
		}
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, Error(err))
		}
	}
	return a
}
