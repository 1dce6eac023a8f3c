package domain

// Selection is a character-offset range over a text buffer. Start == End
// represents a caret; otherwise the range [Start, End) is highlighted.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsEmpty reports whether the selection is a caret rather than a span.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Clamp constrains the selection to a buffer of the given length and
// normalizes an inverted range. Out-of-range selections are a caller bug;
// clamping keeps the insertion operations total anyway.
func (s Selection) Clamp(length int) Selection {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End < 0 {
		s.End = 0
	}
	if s.Start > length {
		s.Start = length
	}
	if s.End > length {
		s.End = length
	}
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}
