package ledger

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Period represents an accounting period in YYYY-MM form.
// It is fixed on a ledger row at creation time and is the sole grouping
// key for flow reports.
type Period string

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParsePeriod validates and returns a Period from its YYYY-MM string form.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if !periodPattern.MatchString(s) {
		return "", fmt.Errorf("invalid accounting period %q: want YYYY-MM", s)
	}
	return Period(s), nil
}

// ParsePeriods parses a comma-separated or pre-split list of period strings.
func ParsePeriods(values []string) ([]Period, error) {
	var periods []Period
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			p, err := ParsePeriod(part)
			if err != nil {
				return nil, err
			}
			periods = append(periods, p)
		}
	}
	return periods, nil
}

// PeriodOf derives the accounting period from a transaction date.
func PeriodOf(t time.Time) Period {
	return Period(t.Format("2006-01"))
}

// String returns the YYYY-MM representation.
func (p Period) String() string {
	return string(p)
}

// Start returns midnight on the first day of the period (UTC).
func (p Period) Start() time.Time {
	t, _ := time.Parse("2006-01", string(p))
	return t
}

// End returns the last instant of the period's final day.
// Used as the snapshot cutoff when a report is requested by period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Before reports whether p precedes other chronologically.
func (p Period) Before(other Period) bool {
	return string(p) < string(other)
}

// RoundMoney applies the monetary rounding policy: fixed two-decimal
// scale, half-up. Rounding happens at line-item granularity only; sums
// of already-rounded values are never re-rounded.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
