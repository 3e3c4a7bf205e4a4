// Package validation holds the request payload entities. Each constructor
// takes the decoded JSON body and returns either the typed entity or a
// domain-coded failure for the HTTP boundary to translate.
package validation

import (
	"regexp"

	"forumapi/internal/models"
)

const maxUsernameLen = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

// isMissing treats absent and falsy values the same, so an empty string or
// explicit null reports "missing property" rather than a type error.
func isMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}

// requireStrings checks that every key is present and holds a string.
// Presence is checked for all keys before any type check so a payload that is
// both incomplete and mistyped reports the missing property first.
func requireStrings(payload map[string]any, keys []string, missingCode, typeCode string) (map[string]string, error) {
	for _, key := range keys {
		if isMissing(payload[key]) {
			return nil, models.NewDomainError(missingCode)
		}
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		str, ok := payload[key].(string)
		if !ok {
			return nil, models.NewDomainError(typeCode)
		}
		values[key] = str
	}
	return values, nil
}
