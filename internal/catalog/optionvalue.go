package catalog

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"soapbox/internal/printify"
)

// FallbackOptionValue is returned when no displayable text can be recovered
// from an upstream option value.
const FallbackOptionValue = "Option"

// displayKeys are tried in order when an option value arrives as an object.
var displayKeys = []string{"name", "title", "label", "value", "text"}

var (
	idPattern         = regexp.MustCompile(`\bid\s*:\s*\d+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeOptionValue converts any upstream option value into a short,
// human-displayable string. It never fails: every input, including null,
// yields a non-nil string, and the literal "[object Object]" never escapes.
func SanitizeOptionValue(v printify.OptionValue) string {
	switch v.Kind {
	case printify.KindNull:
		return ""

	case printify.KindString:
		if !strings.ContainsAny(v.Str, "{}[]") {
			return strings.TrimSpace(v.Str)
		}
		return scrub(v.Str)

	case printify.KindList:
		scalars := lo.FilterMap(v.List, func(item printify.OptionValue, _ int) (string, bool) {
			if item.Kind != printify.KindString {
				return "", false
			}
			s := strings.TrimSpace(item.Str)
			return s, s != ""
		})
		if len(scalars) > 0 {
			return strings.Join(scalars, ", ")
		}
		return scrub(stringify(v))

	case printify.KindRecord:
		for _, key := range displayKeys {
			if s := stringField(v.Record, key); s != "" {
				return s
			}
		}
		// No display key; take the first non-empty string property. Keys are
		// sorted so the choice is deterministic across runs.
		keys := lo.Keys(v.Record)
		sort.Strings(keys)
		for _, key := range keys {
			if s := stringField(v.Record, key); s != "" {
				return s
			}
		}
		return scrub(stringify(v))

	default:
		return scrub(stringify(v))
	}
}

func stringField(record map[string]any, key string) string {
	s, ok := record[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func stringify(v printify.OptionValue) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// scrub strips JSON-ish punctuation from a stringified value and collapses
// the remainder into one displayable line.
func scrub(s string) string {
	if strings.TrimSpace(s) == "[object Object]" {
		return FallbackOptionValue
	}

	s = strings.NewReplacer(
		"{", " ",
		"}", " ",
		"[", " ",
		"]", " ",
		`"`, " ",
		"'", " ",
	).Replace(s)
	s = idPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))

	if s == "" || s == "[object Object]" {
		return FallbackOptionValue
	}
	return s
}
