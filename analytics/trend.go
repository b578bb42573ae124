package analytics

import (
	"time"
)

// Period granularities chosen by range length.
const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

// Bucket count clamps: short ranges are left-padded with zero buckets up to
// minBuckets, long ranges keep only the most recent maxBuckets.
const (
	minBuckets = 6
	maxBuckets = 12
)

// Bucket is one period of the trend series.
type Bucket struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// Granularity picks the bucket size for a date range: up to 30 days daily,
// up to 90 days weekly (weeks start Sunday), monthly beyond that.
func Granularity(start, end time.Time) string {
	days := daysBetween(start, end)
	switch {
	case days <= 30:
		return GranularityDay
	case days <= 90:
		return GranularityWeek
	default:
		return GranularityMonth
	}
}

// BucketTrend reduces records into an ordered series of period buckets for
// the given range. Every period in range gets a bucket even when no record
// falls into it. The series is left-padded with zero buckets to at least 6
// entries and trimmed to the most recent 12.
func BucketTrend(records []Record, start, end time.Time) []Bucket {
	if end.Before(start) {
		start, end = end, start
	}
	granularity := Granularity(start, end)

	// Ordered period starts covering the whole range.
	var periods []time.Time
	for p := periodStart(start, granularity); !p.After(end); p = nextPeriod(p, granularity) {
		periods = append(periods, p)
	}

	// Left-pad with earlier periods before clamping so the padding carries
	// real labels.
	for len(periods) < minBuckets {
		first := periods[0]
		periods = append([]time.Time{prevPeriod(first, granularity)}, periods...)
	}

	index := make(map[time.Time]int, len(periods))
	buckets := make([]Bucket, len(periods))
	for i, p := range periods {
		index[p] = i
		buckets[i] = Bucket{Label: periodLabel(p, granularity)}
	}

	for _, r := range records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		i, ok := index[periodStart(r.Date, granularity)]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].Sum += r.Amount
	}

	if len(buckets) > maxBuckets {
		buckets = buckets[len(buckets)-maxBuckets:]
	}
	return buckets
}

func periodStart(t time.Time, granularity string) time.Time {
	year, month, day := t.Date()
	switch granularity {
	case GranularityWeek:
		// weeks start Sunday
		d := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
		return d.AddDate(0, 0, -int(d.Weekday()))
	case GranularityMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	}
}

func nextPeriod(p time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityWeek:
		return p.AddDate(0, 0, 7)
	case GranularityMonth:
		return p.AddDate(0, 1, 0)
	default:
		return p.AddDate(0, 0, 1)
	}
}

func prevPeriod(p time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityWeek:
		return p.AddDate(0, 0, -7)
	case GranularityMonth:
		return p.AddDate(0, -1, 0)
	default:
		return p.AddDate(0, 0, -1)
	}
}

func periodLabel(p time.Time, granularity string) string {
	if granularity == GranularityMonth {
		return p.Format("Jan 2006")
	}
	return p.Format("02 Jan")
}

func daysBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
