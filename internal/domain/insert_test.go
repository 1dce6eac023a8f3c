package domain

import (
	"strings"
	"testing"
)

func TestInsert_WrapsSelection(t *testing.T) {
	result := Bold("Hello world", Selection{Start: 6, End: 11})

	if result.Text != "Hello **world**" {
		t.Errorf("expected %q, got %q", "Hello **world**", result.Text)
	}
	if result.Selection.Start != 15 || result.Selection.End != 15 {
		t.Errorf("expected caret at 15, got %+v", result.Selection)
	}
}

func TestInsert_EmptySelectionUsesPlaceholder(t *testing.T) {
	result := Bold("Hello ", Caret(6))

	if result.Text != "Hello **Text**" {
		t.Errorf("expected %q, got %q", "Hello **Text**", result.Text)
	}
	if !result.Selection.IsEmpty() {
		t.Errorf("expected collapsed selection, got %+v", result.Selection)
	}
}

func TestInsert_ResultLength(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		sel         Selection
		prefix      string
		suffix      string
		placeholder string
	}{
		{"selection in middle", "one two three", Selection{Start: 4, End: 7}, "**", "**", "Text"},
		{"caret at start", "one two three", Caret(0), "> ", "", "Quote text"},
		{"caret at end", "one two three", Caret(13), "`", "`", "Code"},
		{"whole buffer selected", "one two three", Selection{Start: 0, End: 13}, "*", "*", "Text"},
		{"empty buffer", "", Caret(0), "- [ ] ", "", "Task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Insert(tt.text, tt.sel, tt.prefix, tt.suffix, tt.placeholder)

			body := tt.text[tt.sel.Start:tt.sel.End]
			if body == "" {
				body = tt.placeholder
			}
			want := len(tt.text) - (tt.sel.End - tt.sel.Start) + len(tt.prefix) + len(body) + len(tt.suffix)
			if len(result.Text) != want {
				t.Errorf("expected length %d, got %d (%q)", want, len(result.Text), result.Text)
			}

			wantCaret := tt.sel.Start + len(tt.prefix) + len(body) + len(tt.suffix)
			if result.Selection.Start != wantCaret || result.Selection.End != wantCaret {
				t.Errorf("expected caret at %d, got %+v", wantCaret, result.Selection)
			}
		})
	}
}

func TestInsert_ClampsOutOfRangeSelection(t *testing.T) {
	result := Bold("abc", Selection{Start: -5, End: 99})

	if result.Text != "**abc**" {
		t.Errorf("expected %q, got %q", "**abc**", result.Text)
	}
}

func TestDerivedOperations(t *testing.T) {
	tests := []struct {
		name string
		op   func(string, Selection) InsertResult
		want string
	}{
		{"bold", Bold, "**word**"},
		{"italic", Italic, "*word*"},
		{"bullet", BulletItem, "- word"},
		{"numbered", NumberedItem, "1. word"},
		{"quote", Quote, "> word"},
		{"checkbox", Checkbox, "- [ ] word"},
		{"rule", HorizontalRule, "\n---\nword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op("word", Selection{Start: 0, End: 4})
			if result.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, result.Text)
			}
		})
	}
}

func TestDerivedOperations_Placeholders(t *testing.T) {
	tests := []struct {
		name string
		op   func(string, Selection) InsertResult
		want string
	}{
		{"bullet", BulletItem, "- List item"},
		{"numbered", NumberedItem, "1. List item"},
		{"quote", Quote, "> Quote text"},
		{"checkbox", Checkbox, "- [ ] Task"},
		{"rule", HorizontalRule, "\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op("", Caret(0))
			if result.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, result.Text)
			}
		})
	}
}

func TestCode_SingleLineSelectionUsesInlineBackticks(t *testing.T) {
	result := Code("run the command", Selection{Start: 8, End: 15})

	if result.Text != "run the `command`" {
		t.Errorf("expected inline code, got %q", result.Text)
	}
}

func TestCode_MultiLineSelectionUsesFencedBlock(t *testing.T) {
	text := "a\nb"
	result := Code(text, Selection{Start: 0, End: 3})

	if result.Text != "```\na\nb\n```" {
		t.Errorf("expected fenced block, got %q", result.Text)
	}
}

func TestCode_EmptySelectionUsesFencedBlock(t *testing.T) {
	result := Code("", Caret(0))

	if result.Text != "```\nCode\n```" {
		t.Errorf("expected fenced block with placeholder, got %q", result.Text)
	}
}

func TestLink_SelectionBecomesLabel(t *testing.T) {
	result := Link("see docs here", Selection{Start: 4, End: 8})

	if result.Text != "see [docs](URL) here" {
		t.Errorf("expected %q, got %q", "see [docs](URL) here", result.Text)
	}
}

func TestLink_EmptySelectionInsertsTemplate(t *testing.T) {
	result := Link("", Caret(0))

	if result.Text != "[Link text](URL)" {
		t.Errorf("expected %q, got %q", "[Link text](URL)", result.Text)
	}
}

func TestInsertHeading_EmptyBuffer(t *testing.T) {
	result := InsertHeading("", Caret(0), 2)

	if result.Text != "## " {
		t.Errorf("expected %q, got %q", "## ", result.Text)
	}
	if result.Selection.Start != 3 {
		t.Errorf("expected caret at 3, got %+v", result.Selection)
	}
}

func TestInsertHeading_ReplacesExistingMarker(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		level int
		want  string
	}{
		{"plain line", "Title", 1, "# Title"},
		{"existing level 1 to 3", "# Title", 3, "### Title"},
		{"existing level 6 to 2", "###### Title", 2, "## Title"},
		{"marker without space", "##Title", 1, "# Title"},
		{"marker with extra spaces", "##   Title", 2, "## Title"},
		{"seven hashes is not a heading", "####### x", 1, "# ####### x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InsertHeading(tt.text, Caret(0), tt.level)
			if result.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, result.Text)
			}
		})
	}
}

func TestInsertHeading_Idempotent(t *testing.T) {
	once := InsertHeading("## Title", Caret(0), 2)
	twice := InsertHeading(once.Text, Caret(0), 2)

	if once.Text != twice.Text {
		t.Errorf("expected stable result, got %q then %q", once.Text, twice.Text)
	}
	if strings.Count(twice.Text, "#") != 2 {
		t.Errorf("expected exactly two #, got %q", twice.Text)
	}
}

func TestInsertHeading_TargetsLineContainingCaret(t *testing.T) {
	text := "first\nsecond\nthird"

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"start of buffer", 0, "# first\nsecond\nthird"},
		{"middle of first line", 3, "# first\nsecond\nthird"},
		{"end of first line", 5, "# first\nsecond\nthird"},
		{"start of second line", 6, "first\n# second\nthird"},
		{"middle of second line", 9, "first\n# second\nthird"},
		{"end of buffer", 18, "first\nsecond\n# third"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InsertHeading(text, Caret(tt.offset), 1)
			if result.Text != tt.want {
				t.Errorf("caret %d: expected %q, got %q", tt.offset, tt.want, result.Text)
			}
		})
	}
}

func TestInsertHeading_CaretAtEndOfRewrittenLine(t *testing.T) {
	result := InsertHeading("first\nsecond\nthird", Caret(9), 2)

	// Caret lands after "first\n## second".
	want := len("first\n") + len("## second")
	if result.Selection.Start != want {
		t.Errorf("expected caret at %d, got %+v", want, result.Selection)
	}
}

func TestInsertHeading_ClampsLevel(t *testing.T) {
	low := InsertHeading("x", Caret(0), 0)
	if low.Text != "# x" {
		t.Errorf("expected level clamped to 1, got %q", low.Text)
	}

	high := InsertHeading("x", Caret(0), 9)
	if high.Text != "###### x" {
		t.Errorf("expected level clamped to 6, got %q", high.Text)
	}
}
