package domain

import "strings"

// InsertResult is the outcome of applying a markdown construct to a buffer.
type InsertResult struct {
	Text      string
	Selection Selection
}

// Insert wraps the current selection in prefix/suffix. If nothing is
// selected, placeholder is inserted between them instead. The resulting
// selection collapses to a caret immediately after the inserted span.
func Insert(text string, sel Selection, prefix, suffix, placeholder string) InsertResult {
	sel = sel.Clamp(len(text))

	before := text[:sel.Start]
	body := text[sel.Start:sel.End]
	after := text[sel.End:]

	if body == "" {
		body = placeholder
	}

	caret := sel.Start + len(prefix) + len(body) + len(suffix)
	return InsertResult{
		Text:      before + prefix + body + suffix + after,
		Selection: Caret(caret),
	}
}

// InsertHeading rewrites the line containing the selection start as a heading
// of the given level (1..6), replacing any existing heading marker. The caret
// is placed at the end of the rewritten line.
//
// A caret sitting at the end of a line (just before its newline) belongs to
// that line; a caret just after the newline belongs to the next line.
func InsertHeading(text string, sel Selection, level int) InsertResult {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	sel = sel.Clamp(len(text))

	lines := strings.Split(text, "\n")

	// The last line always satisfies the condition, so the loop terminates
	// with a valid index.
	lineIdx := 0
	lineStart := 0
	pos := 0
	for i, line := range lines {
		if pos+len(line) >= sel.Start {
			lineIdx = i
			lineStart = pos
			break
		}
		pos += len(line) + 1
	}

	stripped := stripHeading(lines[lineIdx])
	lines[lineIdx] = strings.Repeat("#", level) + " " + stripped

	return InsertResult{
		Text:      strings.Join(lines, "\n"),
		Selection: Caret(lineStart + len(lines[lineIdx])),
	}
}

// stripHeading removes a leading run of up to six '#' characters plus any
// following spaces. Lines with more than six '#' are not headings and are
// left alone.
func stripHeading(line string) string {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > 6 {
		return line
	}
	rest := line[hashes:]
	return strings.TrimLeft(rest, " ")
}

// Bold wraps the selection in ** markers.
func Bold(text string, sel Selection) InsertResult {
	return Insert(text, sel, "**", "**", "Text")
}

// Italic wraps the selection in * markers.
func Italic(text string, sel Selection) InsertResult {
	return Insert(text, sel, "*", "*", "Text")
}

// HorizontalRule inserts a thematic break at the selection.
func HorizontalRule(text string, sel Selection) InsertResult {
	return Insert(text, sel, "\n---\n", "", "")
}

// BulletItem prefixes the selection as an unordered list item.
func BulletItem(text string, sel Selection) InsertResult {
	return Insert(text, sel, "- ", "", "List item")
}

// NumberedItem prefixes the selection as an ordered list item.
func NumberedItem(text string, sel Selection) InsertResult {
	return Insert(text, sel, "1. ", "", "List item")
}

// Quote prefixes the selection as a block quote.
func Quote(text string, sel Selection) InsertResult {
	return Insert(text, sel, "> ", "", "Quote text")
}

// Checkbox prefixes the selection as a task-list item.
func Checkbox(text string, sel Selection) InsertResult {
	return Insert(text, sel, "- [ ] ", "", "Task")
}

// Code wraps a single-line selection in inline backticks. An empty or
// multi-line selection gets a fenced block instead.
func Code(text string, sel Selection) InsertResult {
	sel = sel.Clamp(len(text))
	selected := text[sel.Start:sel.End]

	if selected != "" && !strings.Contains(selected, "\n") {
		return Insert(text, sel, "`", "`", "Code")
	}
	return Insert(text, sel, "```\n", "\n```", "Code")
}

// Link wraps a non-empty selection as the label of a markdown link with a
// URL placeholder. With nothing selected it inserts a full link template.
func Link(text string, sel Selection) InsertResult {
	sel = sel.Clamp(len(text))

	if !sel.IsEmpty() {
		return Insert(text, sel, "[", "](URL)", "")
	}
	return Insert(text, sel, "[Link text](", ")", "URL")
}
