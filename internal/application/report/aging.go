package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shoplite/backend/internal/domain/shared"
)

// BucketScheme classifies days outstanding into labeled aging buckets.
// Boundaries are inclusive upper bounds in days, ascending; the last
// bucket is open-ended. The scheme owns its labels so every report and
// its totals row agree on column names.
type BucketScheme struct {
	boundaries []int
	labels     []string
}

// NewBucketScheme builds a scheme from ascending day boundaries, deriving
// labels like "0-30", "31-60", "90+".
func NewBucketScheme(boundaries []int) (BucketScheme, error) {
	if len(boundaries) == 0 {
		return BucketScheme{}, shared.NewDomainError("INVALID_INPUT", "aging scheme needs at least one boundary")
	}
	if !sort.IntsAreSorted(boundaries) {
		return BucketScheme{}, shared.NewDomainError("INVALID_INPUT", "aging boundaries must be ascending")
	}
	if boundaries[0] <= 0 {
		return BucketScheme{}, shared.NewDomainError("INVALID_INPUT", "aging boundaries must be positive")
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] == boundaries[i-1] {
			return BucketScheme{}, shared.NewDomainError("INVALID_INPUT", "aging boundaries must be distinct")
		}
	}

	labels := make([]string, 0, len(boundaries)+1)
	prev := 0
	for _, b := range boundaries {
		labels = append(labels, fmt.Sprintf("%d-%d", prev, b))
		prev = b + 1
	}
	labels = append(labels, fmt.Sprintf("%d+", boundaries[len(boundaries)-1]))

	return BucketScheme{boundaries: boundaries, labels: labels}, nil
}

// MustBucketScheme panics on an invalid scheme. Only for the package
// defaults below.
func MustBucketScheme(boundaries []int) BucketScheme {
	s, err := NewBucketScheme(boundaries)
	if err != nil {
		panic(err)
	}
	return s
}

// Default schemes: summaries use three coarse buckets, detail listings
// four.
var (
	DefaultSummaryScheme = MustBucketScheme([]int{30, 60})
	DefaultDetailScheme  = MustBucketScheme([]int{30, 60, 90})
)

// Labels returns the bucket labels in column order.
func (s BucketScheme) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Classify maps days outstanding to a bucket label. Boundaries are
// inclusive: with a 30-day boundary, day 30 still lands in "0-30" and
// day 31 in the next bucket.
func (s BucketScheme) Classify(days int) string {
	for i, b := range s.boundaries {
		if days <= b {
			return s.labels[i]
		}
	}
	return s.labels[len(s.labels)-1]
}

// HasBucket reports whether label names a bucket of this scheme.
func (s BucketScheme) HasBucket(label string) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}

// DaysOutstanding is the whole-day distance from a record's date to the
// report's as-of date. Same-day records age zero days; records dated
// after the as-of date come out negative and classify into the first
// bucket.
func DaysOutstanding(recordDate, asOf time.Time) int {
	d0 := recordDate.Truncate(24 * time.Hour)
	a0 := asOf.Truncate(24 * time.Hour)
	return int(a0.Sub(d0).Hours() / 24)
}
