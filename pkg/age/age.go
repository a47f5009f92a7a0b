// Package age derives an integer age in years from an ISO date of birth.
package age

import (
	"fmt"
	"time"
)

const dobLayout = "2006-01-02"

// FromDOB returns whole years between dob ("YYYY-MM-DD") and now.
// The year difference is decremented by one when the birthday has not yet
// occurred in now's calendar year. No timezone handling: both sides are
// compared as plain calendar dates.
func FromDOB(dob string, now time.Time) (int, error) {
	born, err := time.Parse(dobLayout, dob)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", dob, err)
	}

	years := now.Year() - born.Year()
	if now.Month() < born.Month() ||
		(now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years, nil
}
