package age_test

import (
	"testing"
	"time"

	"go-diettrack-backend/pkg/age"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromDOB(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		now  time.Time
		want int
	}{
		{"day before birthday", "2000-03-01", date(2024, time.February, 29), 23},
		{"on birthday", "2000-03-01", date(2024, time.March, 1), 24},
		{"day after birthday", "2000-03-01", date(2024, time.March, 2), 24},
		{"earlier month", "1990-12-31", date(2024, time.January, 1), 33},
		{"same day same month", "1990-06-15", date(2024, time.June, 15), 34},
		{"newborn", "2024-01-10", date(2024, time.June, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := age.FromDOB(tt.dob, tt.now)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromDOBInvalid(t *testing.T) {
	for _, dob := range []string{"", "31-12-1990", "1990/12/31", "not-a-date"} {
		_, err := age.FromDOB(dob, time.Now())
		assert.Error(t, err, dob)
	}
}
