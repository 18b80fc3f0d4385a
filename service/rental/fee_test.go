package rentalsvc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	rentalsvc "github.com/fernandollisboa/boardcamp/service/rental"
	"github.com/fernandollisboa/boardcamp/util/date"
)

func TestComputeDelayFee(t *testing.T) {
	rentDate := date.New(2024, time.January, 1)

	tests := []struct {
		name          string
		daysRented    int
		originalPrice int
		returnDate    date.Date
		want          int
	}{
		{
			name:          "returned_exactly_on_due_date",
			daysRented:    3,
			originalPrice: 300,
			returnDate:    date.New(2024, time.January, 4),
			want:          0,
		},
		{
			name:          "returned_two_days_late",
			daysRented:    3,
			originalPrice: 300,
			returnDate:    date.New(2024, time.January, 6),
			want:          200,
		},
		{
			name:          "returned_same_day_rental_opened",
			daysRented:    3,
			originalPrice: 300,
			returnDate:    rentDate,
			want:          0,
		},
		{
			name:          "returned_before_due_date",
			daysRented:    5,
			originalPrice: 500,
			returnDate:    date.New(2024, time.January, 3),
			want:          0,
		},
		{
			name:          "one_day_late_single_day_rental",
			daysRented:    1,
			originalPrice: 80,
			returnDate:    date.New(2024, time.January, 3),
			want:          80,
		},
		{
			name:          "long_overdue",
			daysRented:    2,
			originalPrice: 100,
			returnDate:    date.New(2024, time.February, 1),
			want:          29 * 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rentalsvc.ComputeDelayFee(rentDate, tt.daysRented, tt.originalPrice, tt.returnDate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailable(t *testing.T) {
	assert.True(t, rentalsvc.Available(3, 0))
	assert.True(t, rentalsvc.Available(3, 2))
	// at capacity: the last unit is already out
	assert.False(t, rentalsvc.Available(3, 3))
	assert.False(t, rentalsvc.Available(1, 1))
	assert.True(t, rentalsvc.Available(1, 0))
}
