package ai

import "strings"

// minTipLength filters out noise lines ("OK", "1.", stray fragments)
// left after bullet stripping.
const minTipLength = 6

// ParseTips extracts up to 3 usable tip lines from raw model output.
// Leading bullet markers and list numbering are stripped; lines
// shorter than minTipLength characters are discarded.
func ParseTips(text string) []string {
	var tips []string
	for _, line := range strings.Split(text, "\n") {
		tip := stripBullet(strings.TrimSpace(line))
		if len(tip) < minTipLength {
			continue
		}
		tips = append(tips, tip)
		if len(tips) == maxTips {
			break
		}
	}
	return tips
}

// stripBullet removes a single leading list marker: "-", "*", "•",
// or digits followed by "." or ")".
func stripBullet(line string) string {
	switch {
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return strings.TrimSpace(line[2:])
	case strings.HasPrefix(line, "• "):
		return strings.TrimSpace(strings.TrimPrefix(line, "• "))
	}

	// Numbered lists: "1. tip" or "2) tip".
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
