package merger

import "strings"

// drawState carries the font and vertical cursor threaded explicitly
// through the drawing helpers, rather than read back from the canvas.
type drawState struct {
	font string
	size float64
	y    float64
}

// wrapText greedily wraps text into lines no wider than maxWidth, measured
// by the supplied font-metrics function. A single word wider than maxWidth
// is placed alone on its own line, never split.
func wrapText(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)

	var lines []string
	var current []string
	var width float64

	for _, word := range words {
		wordWidth := measure(word)
		spaceWidth := 0.0
		if len(current) > 0 {
			spaceWidth = measure(" ")
		}

		if width+wordWidth+spaceWidth <= maxWidth {
			current = append(current, word)
			width += wordWidth + spaceWidth
		} else {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
			}
			current = []string{word}
			width = wordWidth
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return lines
}
