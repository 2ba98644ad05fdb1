// Package validator holds the field checks applied to public form submissions.
package validator

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// MinPhoneDigits is the minimum number of digits a phone number must contain.
const MinPhoneDigits = 10

// IsValidEmail reports whether s looks like local@domain.tld.
// The check is intentionally permissive and not RFC 5322 compliant,
// but the whole string must match.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s contains at least MinPhoneDigits ASCII digits
// once every non-digit character is ignored.
func IsValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}

// Extension returns the lower-cased text after the last dot of filename,
// or "" when filename has no dot.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// HasAllowedExtension reports whether filename's extension is in allowed.
// allowed entries are compared case-insensitively and may carry a leading dot.
func HasAllowedExtension(filename string, allowed []string) bool {
	if !strings.Contains(filename, ".") {
		return false
	}
	ext := Extension(filename)
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(strings.TrimSpace(a), ".")) == ext {
			return true
		}
	}
	return false
}

// SecureFilename returns a version of name that is safe to store on a
// regular file system. Path separators become spaces, runs of whitespace
// become a single underscore, non-ASCII characters are folded or dropped
// and anything outside [A-Za-z0-9_.-] is removed. The result may be empty.
func SecureFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		b.WriteRune(r)
	}
	name = strings.Join(strings.Fields(b.String()), "_")
	name = unsafeFilenameRe.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
