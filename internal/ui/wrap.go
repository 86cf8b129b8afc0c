package ui

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapText splits s into lines no wider than width terminal cells. Lines
// break at spaces; a word wider than width is broken across lines.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line strings.Builder
		used := 0
		flush := func() {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
			used = 0
		}

		for _, word := range strings.Fields(para) {
			w := uniseg.StringWidth(word)
			sep := 0
			if used > 0 {
				sep = 1
			}
			if used+sep+w <= width {
				if sep == 1 {
					line.WriteByte(' ')
				}
				line.WriteString(word)
				used += sep + w
				continue
			}
			if used > 0 {
				flush()
			}
			if w <= width {
				line.WriteString(word)
				used = w
				continue
			}

			gr := uniseg.NewGraphemes(word)
			for gr.Next() {
				cluster := gr.Str()
				cw := uniseg.StringWidth(cluster)
				if used+cw > width {
					flush()
				}
				line.WriteString(cluster)
				used += cw
			}
		}
		if used > 0 || len(lines) == 0 || para == "" {
			flush()
		}
	}
	return lines
}
