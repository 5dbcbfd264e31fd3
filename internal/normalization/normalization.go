package normalization

import (
	"strings"
)

// ParseInputString trims surrounding whitespace from user-supplied text.
// Identity keys (usernames) are compared verbatim after trimming.
func ParseInputString(input string) string {
	return strings.TrimSpace(input)
}

func ParseInputStringPtr(input *string) *string {
	if input == nil {
		return nil
	}
	normalized := strings.TrimSpace(*input)
	return &normalized
}
