package services

import (
	"fmt"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

// Slot is one fixed daily time interval. Break slots (tea break, lunch)
// are placeholders and can never hold a lesson.
type Slot struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	IsBreak bool   `json:"is_break"`
	Label   string `json:"label,omitempty"`
}

// daySlots is the calendar every weekday shares. Order matters: grids are
// rendered in this sequence.
var daySlots = []Slot{
	{Start: "09:00", End: "10:00"},
	{Start: "10:00", End: "10:30"},
	{Start: "10:30", End: "11:00", IsBreak: true, Label: "Break"},
	{Start: "11:00", End: "12:00"},
	{Start: "12:00", End: "13:00"},
	{Start: "13:00", End: "14:00", IsBreak: true, Label: "Lunch"},
	{Start: "14:00", End: "15:00"},
	{Start: "15:00", End: "16:00"},
}

var weekDays = []models.DayOfWeek{
	models.Monday, models.Tuesday, models.Wednesday,
	models.Thursday, models.Friday, models.Saturday,
}

// ListDays returns the schedulable days, Monday through Saturday.
func ListDays() []models.DayOfWeek {
	days := make([]models.DayOfWeek, len(weekDays))
	copy(days, weekDays)
	return days
}

// ListSlots returns every daily slot, breaks included, in display order.
func ListSlots() []Slot {
	slots := make([]Slot, len(daySlots))
	copy(slots, daySlots)
	return slots
}

// ListClassSlots returns only the assignable slots, in order.
func ListClassSlots() []Slot {
	var slots []Slot
	for _, s := range daySlots {
		if !s.IsBreak {
			slots = append(slots, s)
		}
	}
	return slots
}

// SlotLabel returns the display label for a slot start time, e.g.
// "09:00 - 10:00". Break slots use their names. Unknown starts fall back
// to the bare time.
func SlotLabel(start string) string {
	for _, s := range daySlots {
		if s.Start == start {
			if s.IsBreak {
				return s.Label
			}
			return fmt.Sprintf("%s - %s", s.Start, s.End)
		}
	}
	return start
}
