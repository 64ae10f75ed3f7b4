package contact

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	MessageSuccess = "MESSAGE SENT SUCCESSFULLY."
	MessageFailure = "OOPS! THERE WAS A PROBLEM."

	LabelIdle    = "SEND MESSAGE"
	LabelSending = "SENDING..."
)

// Tone tells the painter how to colour the status line.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneError
)

type Field struct {
	Name  string
	Value string
}

// Form is the contact form state. It is owned by the frame loop; background work
// reaches it only through the submitter's dispatcher.
type Form struct {
	Action string
	Method string
	Fields []Field

	Status        string
	Tone          Tone
	SubmitLabel   string
	SubmitEnabled bool

	// Focus is the index of the field receiving typed text, -1 for none.
	Focus int
}

func NewForm(action, method string, names []string) *Form {
	f := &Form{
		Action:        action,
		Method:        strings.ToUpper(method),
		SubmitLabel:   LabelIdle,
		SubmitEnabled: true,
		Focus:         -1,
	}
	if f.Method == "" {
		f.Method = "POST"
	}
	for _, n := range names {
		f.Fields = append(f.Fields, Field{Name: n})
	}
	return f
}

func (f *Form) field(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

func (f *Form) Set(name, value string) error {
	fld := f.field(name)
	if fld == nil {
		return fmt.Errorf("contact: no field %q", name)
	}
	fld.Value = value
	return nil
}

func (f *Form) Value(name string) string {
	if fld := f.field(name); fld != nil {
		return fld.Value
	}
	return ""
}

// Values snapshots the fields for sending.
func (f *Form) Values() url.Values {
	v := url.Values{}
	for _, fld := range f.Fields {
		v.Set(fld.Name, fld.Value)
	}
	return v
}

// Reset clears every field value.
func (f *Form) Reset() {
	for i := range f.Fields {
		f.Fields[i].Value = ""
	}
}

// FocusNext moves focus to the next field, wrapping around.
func (f *Form) FocusNext() {
	if len(f.Fields) == 0 {
		f.Focus = -1
		return
	}
	f.Focus = (f.Focus + 1) % len(f.Fields)
}

// Type appends r to the focused field.
func (f *Form) Type(r rune) {
	if f.Focus < 0 || f.Focus >= len(f.Fields) {
		return
	}
	f.Fields[f.Focus].Value += string(r)
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() {
	if f.Focus < 0 || f.Focus >= len(f.Fields) {
		return
	}
	v := f.Fields[f.Focus].Value
	if v == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(v)
	f.Fields[f.Focus].Value = v[:len(v)-size]
}
