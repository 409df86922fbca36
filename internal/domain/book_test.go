package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBookAddFindDelete(t *testing.T) {
	book := NewAddressBook()
	assert.Nil(t, book.Find("Alice"))

	alice := NewRecord("Alice")
	book.Add(alice)
	require.Equal(t, alice, book.Find("Alice"))
	assert.Equal(t, 1, book.Len())

	// Re-adding the same name replaces the entry without duplicating it.
	replacement := NewRecord("Alice")
	book.Add(replacement)
	assert.Equal(t, 1, book.Len())
	assert.Equal(t, replacement, book.Find("Alice"))

	book.Delete("Alice")
	assert.Nil(t, book.Find("Alice"))
	assert.Equal(t, 0, book.Len())

	// Deleting an absent name is a no-op.
	book.Delete("Alice")
	assert.Equal(t, 0, book.Len())
}

func TestAddressBookInsertionOrder(t *testing.T) {
	book := NewAddressBook()
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		book.Add(NewRecord(name))
	}

	// Re-adding keeps the original position.
	book.Add(NewRecord("Alice"))

	var names []string
	for _, record := range book.Records() {
		names = append(names, record.Name())
	}
	assert.Equal(t, []string{"Charlie", "Alice", "Bob"}, names)

	book.Delete("Alice")
	names = names[:0]
	for _, record := range book.Records() {
		names = append(names, record.Name())
	}
	assert.Equal(t, []string{"Charlie", "Bob"}, names)
}

func addWithBirthday(t *testing.T, book *AddressBook, name, birthday string) {
	t.Helper()
	record := NewRecord(name)
	require.NoError(t, record.SetBirthday(birthday))
	book.Add(record)
}

func TestUpcomingBirthdaysWindow(t *testing.T) {
	// Reference "today": June 15th, 2025.
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	book := NewAddressBook()
	addWithBirthday(t, book, "Today", "15.06.1990")
	addWithBirthday(t, book, "InSeven", "22.06.1985")
	addWithBirthday(t, book, "InEight", "23.06.1985")
	addWithBirthday(t, book, "Yesterday", "14.06.1990")
	book.Add(NewRecord("NoBirthday"))

	reminders := book.UpcomingBirthdays(today, 7)
	require.Len(t, reminders, 2)

	// Both window ends are inclusive: today counts, exactly seven days
	// away counts, eight days does not. A birthday that passed
	// yesterday belongs to next year, far outside the window.
	assert.Equal(t, BirthdayReminder{Name: "Today", Date: "2025.06.15"}, reminders[0])
	assert.Equal(t, BirthdayReminder{Name: "InSeven", Date: "2025.06.22"}, reminders[1])
}

func TestUpcomingBirthdaysYearWrap(t *testing.T) {
	// Window spanning the new year boundary.
	today := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)

	book := NewAddressBook()
	addWithBirthday(t, book, "NewYear", "02.01.1990")

	reminders := book.UpcomingBirthdays(today, 7)
	require.Len(t, reminders, 1)
	assert.Equal(t, "2026.01.02", reminders[0].Date, "occurrence must advance to next year")
}

func TestUpcomingBirthdaysInsertionOrder(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Chronologically Late comes after Early, but Late was added first.
	book := NewAddressBook()
	addWithBirthday(t, book, "Late", "20.06.1990")
	addWithBirthday(t, book, "Early", "16.06.1990")

	reminders := book.UpcomingBirthdays(today, 7)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Late", reminders[0].Name, "results follow book order, not date order")
	assert.Equal(t, "Early", reminders[1].Name)
}

func TestUpcomingBirthdaysLeapling(t *testing.T) {
	book := NewAddressBook()
	addWithBirthday(t, book, "Leapling", "29.02.2020")

	// Non-leap year: Feb 29 normalizes to Mar 1.
	today := time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC)
	reminders := book.UpcomingBirthdays(today, 7)
	require.Len(t, reminders, 1)
	assert.Equal(t, "2025.03.01", reminders[0].Date)

	// Leap year: Feb 29 is kept as-is.
	today = time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)
	reminders = book.UpcomingBirthdays(today, 7)
	require.Len(t, reminders, 1)
	assert.Equal(t, "2024.02.29", reminders[0].Date)
}

func TestUpcomingBirthdaysEmptyBook(t *testing.T) {
	book := NewAddressBook()
	assert.Empty(t, book.UpcomingBirthdays(time.Now(), DefaultBirthdayWindow))
}
