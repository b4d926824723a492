package recovery

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/strelka-dev/a7p/internal/record"
)

// Result reports one recovery attempt: whether a fix was applied at the
// violation's path and the value before and after. OldValue and NewValue
// are the untruncated programmatic values; String truncates for display
// only.
type Result struct {
	Path      record.Path
	Recovered bool
	OldValue  record.Value
	NewValue  record.Value
}

// String renders the result as a fixed-width report line:
//
//	Recovered  : ~/profile/zero_x     : value : 900000 -> 0
func (r Result) String() string {
	prefix := "Skipped"
	if r.Recovered {
		prefix = "Recovered"
	}
	return fmt.Sprintf("%-10s : %-30s : value : %s -> %s",
		prefix,
		truncateDisplay(r.Path.String(), 30),
		displayValue(r.OldValue),
		displayValue(r.NewValue),
	)
}

// displayValue formats a value for the report line. Long lists show only
// their head and tail, long scalars are clipped in the middle.
func displayValue(v record.Value) string {
	if v == nil {
		return "<none>"
	}
	if list, ok := v.(record.List); ok {
		parts := make([]string, len(list))
		for i, e := range list {
			parts[i] = fmt.Sprintf("%v", record.ToGo(e))
		}
		if len(parts) > 6 {
			return fmt.Sprintf("[ %s, ... %s ]",
				strings.Join(parts[:3], ", "), strings.Join(parts[len(parts)-3:], ", "))
		}
		return fmt.Sprintf("[ %s ]", strings.Join(parts, ", "))
	}
	s := strings.ReplaceAll(fmt.Sprintf("%v", record.ToGo(v)), "\n", " ")
	return clipMiddle(s, 50)
}

// truncateDisplay trims s to width runes with an ellipsis, NFC-normalized
// so combining sequences are not split mid-character.
func truncateDisplay(s string, width int) string {
	r := []rune(norm.NFC.String(s))
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// clipMiddle keeps the head and tail of an overlong scalar rendering.
func clipMiddle(s string, width int) string {
	r := []rune(norm.NFC.String(s))
	if len(r) <= width {
		return s
	}
	return string(r[:25]) + " ... " + string(r[len(r)-25:])
}
