package domain

import (
	"math"
	"time"
)

// OccurrenceLayout is the output format for upcoming-birthday dates (YYYY.MM.DD).
const OccurrenceLayout = "2006.01.02"

// DefaultBirthdayWindow is the window, in days, used when the caller
// does not ask for a specific one.
const DefaultBirthdayWindow = 7

// BirthdayReminder pairs a contact name with the date their birthday
// next occurs, formatted with OccurrenceLayout.
type BirthdayReminder struct {
	Name string
	Date string
}

// AddressBook maps contact names to records. Iteration order is
// insertion order; the order slice carries it because Go maps do not.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts a record keyed by its name. Re-adding an existing name
// replaces the record in place without changing its position.
func (b *AddressBook) Add(record *Record) {
	name := record.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record for name, or nil if there is none.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record for name. Deleting an absent name is a no-op.
func (b *AddressBook) Delete(name string) {
	if _, exists := b.records[name]; !exists {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays returns the contacts whose next birthday falls
// within windowDays of today, inclusive at both ends: a birthday today
// or exactly windowDays away counts. Results follow the book's
// insertion order, not chronological order.
//
// Each birthday's month/day is re-anchored onto today's year; if that
// occurrence has already passed it moves to next year. A Feb 29
// birthday re-anchored onto a non-leap year normalizes to Mar 1
// (time.Date semantics), so leaplings are still greeted every year.
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []BirthdayReminder {
	loc := today.Location()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	var reminders []BirthdayReminder
	for _, record := range b.Records() {
		birthday := record.Birthday()
		if birthday == nil {
			continue
		}

		date := birthday.Date()
		occurrence := time.Date(todayStart.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		if occurrence.Before(todayStart) {
			occurrence = time.Date(todayStart.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, loc)
		}

		// Round so a DST transition inside the window cannot shift
		// the day count off by one.
		days := int(math.Round(occurrence.Sub(todayStart).Hours() / 24))
		if days >= 0 && days <= windowDays {
			reminders = append(reminders, BirthdayReminder{
				Name: record.Name(),
				Date: occurrence.Format(OccurrenceLayout),
			})
		}
	}
	return reminders
}
