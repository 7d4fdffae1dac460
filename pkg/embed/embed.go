// Package embed validates user-submitted video links and derives the
// canonical embed URL that gets persisted. The src extraction is a narrow
// text match for iframe fragments, not an HTML parser; when no src
// attribute is found the whole trimmed input is treated as the candidate.
package embed

import (
	"fmt"
	"regexp"
	"strings"

	"moviehub/pkg/model"
)

// FieldError is a validation failure tied to a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var srcPattern = regexp.MustCompile(`src="([^"]+)"`)

// Normalize validates (urlType, part, input) and returns the canonical embed
// URL. It must run before every MovieURL create or update.
func Normalize(urlType string, part *int, input string) (string, error) {
	if err := checkPart(urlType, part); err != nil {
		return "", err
	}

	candidate := strings.TrimSpace(input)
	if urlType != model.URLTypeTrailer {
		if m := srcPattern.FindStringSubmatch(candidate); m != nil {
			candidate = m[1]
		}
	}

	if !strings.HasPrefix(candidate, "https://") {
		return "", &FieldError{
			Field:   "embed_input",
			Message: schemeMessage(urlType),
		}
	}

	return candidate, nil
}

// checkPart enforces the part/type coupling: series links require a positive
// part number, movie and trailer links must not carry one.
func checkPart(urlType string, part *int) error {
	switch urlType {
	case model.URLTypeSeries:
		if part == nil {
			return &FieldError{
				Field:   "part",
				Message: "Part number is required for series links.",
			}
		}
		if *part <= 0 {
			return &FieldError{
				Field:   "part",
				Message: "Part number must be a positive integer.",
			}
		}
	case model.URLTypeMovie, model.URLTypeTrailer:
		if part != nil {
			return &FieldError{
				Field:   "part",
				Message: fmt.Sprintf("Part number must be omitted for %s links.", urlType),
			}
		}
	default:
		return &FieldError{
			Field:   "url_type",
			Message: "Link type must be one of trailer, movie or series.",
		}
	}
	return nil
}

func schemeMessage(urlType string) string {
	if urlType == model.URLTypeTrailer {
		return "Trailer link must be a valid https:// URL."
	}
	return "Embed link must contain a valid https:// URL."
}
