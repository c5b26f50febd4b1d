package accounts

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HireDate is a plain calendar date in the legacy D.M.Y file format. It does
// not validate itself; day, month and year ranges are checked at the input
// boundary.
type HireDate struct {
	Day   int
	Month int
	Year  int
}

func (d HireDate) String() string {
	return fmt.Sprintf("%d.%d.%d", d.Day, d.Month, d.Year)
}

// ExperienceAt returns whole years of service as of now. The year difference
// is decremented when the current month is earlier than the hire month, and
// the result is floored at zero so a future-dated hire never goes negative.
func (d HireDate) ExperienceAt(now time.Time) int {
	years := now.Year() - d.Year
	if int(now.Month()) < d.Month {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Experience reads the wall clock at call time, so a long-running session
// always reflects current experience.
func (d HireDate) Experience() int {
	return d.ExperienceAt(time.Now())
}

// ParseHireDate parses the D.M.Y form.
func ParseHireDate(s string) (HireDate, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return HireDate{}, fmt.Errorf("hire date %q: want D.M.Y", s)
	}
	values := make([]int, 0, 3)
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return HireDate{}, fmt.Errorf("hire date %q: %w", s, err)
		}
		values = append(values, value)
	}
	return HireDate{Day: values[0], Month: values[1], Year: values[2]}, nil
}
