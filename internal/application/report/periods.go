package report

import (
	"sort"
	"time"

	"github.com/shoplite/backend/internal/domain/ledger"
	"github.com/shoplite/backend/internal/domain/report"
	"github.com/shoplite/backend/internal/domain/shared"
)

// PeriodRequest carries the raw periodization inputs shared by every
// report endpoint. Period and Periods win over the date range; when all
// are absent the report covers the current month.
type PeriodRequest struct {
	Period    string `form:"period"`
	Periods   string `form:"periods"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

const dateLayout = "2006-01-02"

// resolveWindows turns a periodization request into ordered flow
// windows. The returned period list is non-empty only for period-keyed
// requests; a date range yields a single range window.
func resolveWindows(req PeriodRequest, now time.Time) ([]report.Window, []ledger.Period, error) {
	if req.Period != "" || req.Periods != "" {
		var raw []string
		if req.Period != "" {
			raw = append(raw, req.Period)
		}
		if req.Periods != "" {
			raw = append(raw, req.Periods)
		}
		periods, err := ledger.ParsePeriods(raw)
		if err != nil {
			return nil, nil, shared.NewDomainError("INVALID_PERIOD", err.Error())
		}
		if len(periods) == 0 {
			return nil, nil, shared.NewDomainError("INVALID_INPUT", "periods must list at least one YYYY-MM period")
		}
		periods = dedupePeriods(periods)
		// Report rows and the totals label always run oldest first,
		// whatever order the request listed the periods in.
		sort.Slice(periods, func(i, j int) bool {
			return periods[i].Before(periods[j])
		})
		windows := make([]report.Window, len(periods))
		for i, p := range periods {
			windows[i] = report.WindowForPeriod(p)
		}
		return windows, periods, nil
	}

	if req.StartDate != "" || req.EndDate != "" {
		if req.StartDate == "" || req.EndDate == "" {
			return nil, nil, shared.NewDomainError("INVALID_INPUT", "startDate and endDate must be given together")
		}
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, nil, shared.NewDomainError("INVALID_INPUT", "startDate must be YYYY-MM-DD")
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, nil, shared.NewDomainError("INVALID_INPUT", "endDate must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return nil, nil, shared.NewDomainError("INVALID_INPUT", "endDate must not precede startDate")
		}
		// The range is inclusive of the whole end day.
		end = end.Add(24*time.Hour - time.Nanosecond)
		return []report.Window{report.WindowForRange(start, end)}, nil, nil
	}

	p := ledger.PeriodOf(now)
	return []report.Window{report.WindowForPeriod(p)}, []ledger.Period{p}, nil
}

func dedupePeriods(periods []ledger.Period) []ledger.Period {
	seen := make(map[ledger.Period]struct{}, len(periods))
	out := periods[:0]
	for _, p := range periods {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
