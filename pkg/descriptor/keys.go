package descriptor

import "strings"

// Key prefixes ACF assigns to authoring artifacts. Field group keys start with
// group_, individual fields with field_, and registered block names live under
// the acf/ namespace.
const (
	GroupKeyPrefix  = "group_"
	FieldKeyPrefix  = "field_"
	BlockNamePrefix = "acf/"
)

// HasKeyPrefix reports whether key carries the expected prefix.
func HasKeyPrefix(key, prefix string) bool {
	return strings.HasPrefix(key, prefix)
}

// KeySuffix returns the unique token after the prefix. The second return is
// false when the prefix is missing.
func KeySuffix(key, prefix string) (string, bool) {
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	return key[len(prefix):], true
}

// WellFormedKey reports whether key matches the documented format: the prefix
// followed by a non-empty unique token.
func WellFormedKey(key, prefix string) bool {
	suffix, ok := KeySuffix(key, prefix)
	return ok && suffix != ""
}
