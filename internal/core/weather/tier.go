package weather

import (
	"fmt"
	"time"

	"weathercli.app/pkg/errors"
)

// Tier is the granularity of the upstream endpoint used for a query
type Tier int

const (
	TierCurrent Tier = iota
	TierHourly
	TierDaily
)

func (t Tier) String() string {
	switch t {
	case TierHourly:
		return "hourly"
	case TierDaily:
		return "daily"
	default:
		return "current"
	}
}

// TierBounds describes the horizons a provider can answer for.
// Horizon is the largest day offset supported; ShortTerm the largest one with hour granularity.
type TierBounds struct {
	Horizon   int
	ShortTerm int
}

// SelectTier picks the coarsest tier that still covers the requested date
func SelectTier(date Date, bounds TierBounds) (Tier, error) {
	if date.Day > bounds.Horizon {
		return TierCurrent, errors.NewUnsupportedHorizonError(
			fmt.Sprintf("weather day must be less than %d for this provider", bounds.Horizon+1))
	}

	if !date.HasHour {
		switch {
		case date.Day == 0:
			return TierCurrent, nil
		case date.Day <= bounds.ShortTerm:
			return TierHourly, nil
		default:
			return TierDaily, nil
		}
	}

	if date.Day <= bounds.ShortTerm {
		return TierHourly, nil
	}
	return TierDaily, nil
}

// TargetHour returns the epoch hour the date refers to, relative to now.
// When no hour is requested the current hour of day is used.
func TargetHour(now time.Time, date Date) int64 {
	nowHour := now.Unix() / 3600
	startOfDay := nowHour - nowHour%hoursPerDay

	hourOfDay := nowHour % hoursPerDay
	if date.HasHour {
		hourOfDay = int64(date.Hour)
	}

	return startOfDay + int64(date.Day)*hoursPerDay + hourOfDay
}

// NearestRecord returns the index of the timestamp closest to target (in hours).
// Ties resolve to the first minimum in scan order.
func NearestRecord(timestamps []int64, target int64) (int, error) {
	if len(timestamps) == 0 {
		return 0, errors.NewDecodeError("forecast contains no records", nil)
	}

	best := 0
	bestDiff := absInt64(timestamps[0]/3600 - target)
	for i := 1; i < len(timestamps); i++ {
		diff := absInt64(timestamps[i]/3600 - target)
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best, nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
