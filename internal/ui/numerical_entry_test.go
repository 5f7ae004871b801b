package ui_test

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-clock/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	entry := ui.NewNumericalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Digit_Five", '5', true},
		{"Letter_a", 'a', false},
		{"Letter_Z", 'Z', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericalEntry()
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())
}

// TestNumericalEntry_DirectSetText documents that SetText bypasses the
// keystroke filter; the Validator catches it instead.
func TestNumericalEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry()

	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)

	_, ok := entry.Int()
	assert.False(t, ok)
}

func TestRangeEntry_Validator(t *testing.T) {
	errs := ui.RangeErrors{
		Required:   errors.New("required"),
		NotNumber:  errors.New("nan"),
		OutOfRange: errors.New("range"),
	}
	entry := ui.NewRangeEntry(10, 1000, errs)

	tests := []struct {
		text string
		want error
	}{
		{"", errs.Required},
		{"12a", errs.NotNumber},
		{"9", errs.OutOfRange},
		{"1001", errs.OutOfRange},
		{"10", nil},
		{"1000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			entry.SetText(tt.text)
			assert.Equal(t, tt.want, entry.Validate())
		})
	}

	entry.SetText("250")
	n, ok := entry.Int()
	assert.True(t, ok)
	assert.Equal(t, 250, n)
}
