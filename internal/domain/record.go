package domain

import (
	"fmt"
	"strings"
)

// Record is one contact: an immutable name, an ordered list of phone
// numbers (duplicates allowed), and an optional birthday.
type Record struct {
	name     string
	phones   []*PhoneNumber
	birthday *Birthday
}

// NewRecord creates a record with the given name and no phones or birthday
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns the phone list in insertion order.
func (r *Record) Phones() []*PhoneNumber {
	return r.phones
}

// Birthday returns the birthday, or nil if none is set.
func (r *Record) Birthday() *Birthday {
	return r.birthday
}

// AddPhone validates and appends a phone number. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes every phone matching raw. Removing a number that
// is not present is a no-op.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone matching old with updated, keeping
// its position in the list. The new value is validated before anything
// changes.
func (r *Record) EditPhone(old, updated string) error {
	for _, p := range r.phones {
		if p.String() == old {
			return p.Set(updated)
		}
	}
	return &NotFoundError{Message: "Phone number not found"}
}

// SetBirthday parses and stores a birthday, replacing any prior value.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = birthday
	return nil
}

// String renders the contact as a single line
func (r *Record) String() string {
	rendered := make([]string, len(r.phones))
	for i, p := range r.phones {
		rendered[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(rendered, "; "))
}
