package ui

import (
	"strconv"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits from the keyboard.
// Pasted text is not filtered; attach a Validator (see NewRangeEntry).
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// RangeErrors are the messages a range-validated entry reports.
type RangeErrors struct {
	Required   error
	NotNumber  error
	OutOfRange error
}

// NewRangeEntry creates a NumericalEntry whose Validator accepts integers
// in [lo, hi] only.
func NewRangeEntry(lo, hi int, errs RangeErrors) *NumericalEntry {
	entry := NewNumericalEntry()
	entry.Validator = func(s string) error {
		if s == "" {
			return errs.Required
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errs.NotNumber
		}
		if n < lo || n > hi {
			return errs.OutOfRange
		}
		return nil
	}
	return entry
}

// Int parses the current text.
func (e *NumericalEntry) Int() (int, bool) {
	n, err := strconv.Atoi(e.Text)
	return n, err == nil
}

// TypedRune drops anything but 0-9.
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
