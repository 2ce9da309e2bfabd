package usecase

import (
	"strings"

	"laptopxplorer/internal/article"
)

// estimateReadTime counts the words outside HTML tags, rounded up to whole
// minutes. Anything non-empty takes at least a minute.
func estimateReadTime(content string) int {
	var text strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			text.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			text.WriteRune(r)
		}
	}

	words := len(strings.Fields(text.String()))
	if words == 0 {
		return 0
	}
	return (words + article.WordsPerMinute - 1) / article.WordsPerMinute
}
