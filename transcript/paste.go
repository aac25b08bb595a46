package transcript

import (
	"regexp"
	"strings"
)

// Timestamp shapes people commonly paste: [4:20], (1:02:03), or a
// leading "4:20 -" style marker.
var (
	bracketTimestamp = regexp.MustCompile(`\[(\d{1,2}:\d{2}(?::\d{2})?)\]`)
	parenTimestamp   = regexp.MustCompile(`\((\d{1,2}:\d{2}(?::\d{2})?)\)`)
	leadingTimestamp = regexp.MustCompile(`(?m)^(\d{1,2}:\d{2}(?::\d{2})?)\s*[-–—]`)
	singleNewline    = regexp.MustCompile(`([^\n])\n([^\n])`)
)

// FormatPasted normalizes a manually pasted transcript: recognized
// timestamps are bolded into the **[M:SS]** form the assembler produces,
// and single line breaks are widened to paragraph breaks.
func FormatPasted(text string) string {
	formatted := bracketTimestamp.ReplaceAllString(text, "**[$1]**")
	formatted = parenTimestamp.ReplaceAllString(formatted, "**[$1]**")
	formatted = leadingTimestamp.ReplaceAllString(formatted, "**[$1]**")
	formatted = singleNewline.ReplaceAllString(formatted, "$1\n\n$2")
	return strings.TrimSpace(formatted)
}
