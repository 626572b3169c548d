package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemesterNumbers(t *testing.T) {
	tests := []struct {
		name          string
		durationYears int
		want          []int
	}{
		{"one year course", 1, []int{1, 2}},
		{"two year course", 2, []int{1, 2, 3, 4}},
		{"four year course", 4, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"zero duration", 0, nil},
		{"negative duration", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SemesterNumbers(tt.durationYears))
		})
	}
}
