package academic

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// yearLabelPattern matches fiscal year labels like "2024-2025".
var yearLabelPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// ValidYearLabel reports whether year is a well-formed "YYYY-YYYY" label with
// consecutive years.
func ValidYearLabel(year string) bool {
	m := yearLabelPattern.FindStringSubmatch(year)
	if m == nil {
		return false
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	return b == a+1
}

// SuccessorOf computes the fiscal year following the given label: "A-B"
// becomes "B-(B+1)". The school year runs September 1 through August 31.
func SuccessorOf(year string) (label string, start, end time.Time, err error) {
	m := yearLabelPattern.FindStringSubmatch(year)
	if m == nil {
		return "", time.Time{}, time.Time{}, fmt.Errorf("malformed fiscal year label %q", year)
	}
	b, _ := strconv.Atoi(m[2])

	label = fmt.Sprintf("%d-%d", b, b+1)
	start = time.Date(b, time.September, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(b+1, time.August, 31, 0, 0, 0, 0, time.UTC)
	return label, start, end, nil
}
