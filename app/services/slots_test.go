package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosemaria96/SmartCampusSystem/app/models"
)

func TestListDays(t *testing.T) {
	days := ListDays()
	require.Len(t, days, 6)
	assert.Equal(t, models.Monday, days[0])
	assert.Equal(t, models.Saturday, days[5])
	assert.NotContains(t, days, models.DayOfWeek("SUNDAY"))
}

func TestListSlots(t *testing.T) {
	slots := ListSlots()
	require.Len(t, slots, 8)

	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "10:00", slots[0].End)
	assert.False(t, slots[0].IsBreak)

	// Tea break and lunch at fixed positions
	assert.True(t, slots[2].IsBreak)
	assert.Equal(t, "Break", slots[2].Label)
	assert.Equal(t, "10:30", slots[2].Start)
	assert.True(t, slots[5].IsBreak)
	assert.Equal(t, "Lunch", slots[5].Label)

	assert.Equal(t, "16:00", slots[7].End)
}

func TestListClassSlots(t *testing.T) {
	slots := ListClassSlots()
	require.Len(t, slots, 6)
	for _, s := range slots {
		assert.False(t, s.IsBreak)
	}
}

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"09:00", "09:00 - 10:00"},
		{"10:30", "Break"},
		{"13:00", "Lunch"},
		{"15:00", "15:00 - 16:00"},
		{"23:00", "23:00"}, // unknown start falls back to the bare time
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotLabel(tt.start), "start %s", tt.start)
	}
}
