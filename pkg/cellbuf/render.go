package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Styles maps style keys to lipgloss styles.
type Styles map[StyleKey]lipgloss.Style

// Render converts the buffer into a styled string, rows joined by "\n".
// Adjacent cells sharing a key are merged into one run and rendered with
// a single Style.Render call. Keys missing from styles render unstyled.
// An empty buffer renders as "".
func (b *Buffer) Render(styles Styles) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	chunk := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		runStart := 0
		runStyle := row[0].Style
		for x := 1; x <= b.W; x++ {
			cur := noStyle
			if x < b.W {
				cur = row[x].Style
			}
			if cur == runStyle {
				continue
			}
			chunk = chunk[:0]
			for _, c := range row[runStart:x] {
				chunk = append(chunk, c.Ch)
			}
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			runStart, runStyle = x, cur
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
