package domain

import "time"

// BirthdayLayout is the only accepted input format for birthdays (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Birthday keeps both the text the user typed and the parsed date. The
// original text is what gets displayed and persisted; the parsed date
// drives the upcoming-birthday computation.
type Birthday struct {
	raw  string
	date time.Time
}

// NewBirthday parses raw against BirthdayLayout
func NewBirthday(raw string) (*Birthday, error) {
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format. Use DD.MM.YYYY"}
	}
	return &Birthday{raw: raw, date: date}, nil
}

// Date returns the parsed calendar date.
func (b *Birthday) Date() time.Time {
	return b.date
}

// String returns the original input text, not a reformatted date.
func (b *Birthday) String() string {
	return b.raw
}
