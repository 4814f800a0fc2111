package models

import "time"

// TimeSlot is a bookable interval owned by exactly one mock test.
// BookedBy is set iff IsBooked is true; it is a weak reference to a user ID
// with no cascade when that user disappears.
type TimeSlot struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBooked  bool      `json:"isBooked"`
	BookedBy  *string   `json:"bookedBy,omitempty"`
}

type MockTest struct {
	ID              string     `json:"id"`
	Title           string     `json:"title" validate:"required"`
	DurationMinutes int        `json:"durationMinutes" validate:"min=1"`
	TimeSlots       []TimeSlot `json:"timeSlots" validate:"min=1"`
}

// SlotByID returns the owned slot with the given ID, or nil.
func (m *MockTest) SlotByID(id string) *TimeSlot {
	for i := range m.TimeSlots {
		if m.TimeSlots[i].ID == id {
			return &m.TimeSlots[i]
		}
	}
	return nil
}
