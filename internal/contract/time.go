package contract

import "time"

// QuarterStart returns the first calendar day of the 3-month block containing
// t (month 1, 4, 7 or 10 boundary), in t's location.
func QuarterStart(t time.Time) time.Time {
	month := ((int(t.Month())-1)/3)*3 + 1
	return time.Date(t.Year(), time.Month(month), 1, 0, 0, 0, 0, t.Location())
}

// InQuarter reports whether created falls in the quarter containing asOf,
// i.e. created >= quarter start. The upper bound is open: the dataset is a
// point-in-time export, so nothing after "now" is expected or excluded.
func InQuarter(created, asOf time.Time) bool {
	return !created.Before(QuarterStart(asOf))
}
