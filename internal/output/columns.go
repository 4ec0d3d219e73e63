package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one line of two-column output.
type Row struct {
	Key   string
	Value string
}

// AlignColumns renders rows as "key<pad>\tvalue" lines, padding every key to
// the widest key's visual width. Width is measured in terminal cells, so wide
// and multi-byte characters line up.
func AlignColumns(rows []Row) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Key))
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.Key)
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(r.Key)))
		b.WriteString("\t")
		b.WriteString(r.Value)
		b.WriteString("\n")
	}
	return b.String()
}
