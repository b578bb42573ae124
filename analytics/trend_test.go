package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGranularity(t *testing.T) {
	start := day(2024, time.January, 1)

	cases := []struct {
		name string
		end  time.Time
		want string
	}{
		{"same day", start, GranularityDay},
		{"30 days is still daily", start.AddDate(0, 0, 30), GranularityDay},
		{"31 days switches to weekly", start.AddDate(0, 0, 31), GranularityWeek},
		{"90 days is still weekly", start.AddDate(0, 0, 90), GranularityWeek},
		{"91 days switches to monthly", start.AddDate(0, 0, 91), GranularityMonth},
		{"a full year", start.AddDate(1, 0, 0), GranularityMonth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Granularity(start, tc.end))
		})
	}
}

func TestBucketTrend_DailyCoversEveryDay(t *testing.T) {
	start := day(2024, time.January, 1)
	end := day(2024, time.January, 10)
	records := []Record{
		{Date: day(2024, time.January, 2), Amount: 100},
		{Date: day(2024, time.January, 2), Amount: 50},
		{Date: day(2024, time.January, 10), Amount: 75},
	}

	buckets := BucketTrend(records, start, end)

	require.Len(t, buckets, 10, "one bucket per day, empty days included")
	assert.Equal(t, "01 Jan", buckets[0].Label)
	assert.Equal(t, Bucket{Label: "02 Jan", Count: 2, Sum: 150}, buckets[1])
	assert.Equal(t, 0, buckets[2].Count)
	assert.Equal(t, Bucket{Label: "10 Jan", Count: 1, Sum: 75}, buckets[9])
}

func TestBucketTrend_PadsShortRanges(t *testing.T) {
	d := day(2024, time.March, 15)
	records := []Record{{Date: d, Amount: 200}}

	buckets := BucketTrend(records, d, d)

	require.Len(t, buckets, 6, "single-day range is padded to the minimum")
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, buckets[i].Count)
	}
	// padding carries real preceding-day labels
	assert.Equal(t, "10 Mar", buckets[0].Label)
	assert.Equal(t, Bucket{Label: "15 Mar", Count: 1, Sum: 200}, buckets[5])
}

func TestBucketTrend_CapsAtTwelve(t *testing.T) {
	start := day(2024, time.January, 1)
	end := day(2024, time.January, 31) // 31 daily periods
	records := []Record{
		{Date: day(2024, time.January, 5), Amount: 999}, // falls in a trimmed bucket
		{Date: day(2024, time.January, 25), Amount: 100},
	}

	buckets := BucketTrend(records, start, end)

	require.Len(t, buckets, 12, "long series keeps only the most recent buckets")
	assert.Equal(t, "20 Jan", buckets[0].Label)
	assert.Equal(t, "31 Jan", buckets[11].Label)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 1, total, "records in trimmed periods drop out of the series")
}

func TestBucketTrend_WeeklyMidRange(t *testing.T) {
	// 44-day range, weekly buckets, weeks anchored to the Sunday on or
	// before each date.
	start := day(2024, time.March, 1) // a Friday
	end := day(2024, time.April, 14)  // a Sunday
	records := []Record{
		{Date: day(2024, time.March, 5), Amount: 120},
		{Date: day(2024, time.March, 8), Amount: 80},
		{Date: day(2024, time.April, 14), Amount: 60},
	}

	require.Equal(t, GranularityWeek, Granularity(start, end))
	buckets := BucketTrend(records, start, end)

	require.Len(t, buckets, 8)
	assert.GreaterOrEqual(t, len(buckets), 6)
	// the Friday start falls in the week of Sunday Feb 25
	assert.Equal(t, "25 Feb", buckets[0].Label)
	assert.Equal(t, Bucket{Label: "03 Mar", Count: 2, Sum: 200}, buckets[1])
	assert.Equal(t, Bucket{Label: "14 Apr", Count: 1, Sum: 60}, buckets[7])
}

func TestBucketTrend_MonthlyLabels(t *testing.T) {
	start := day(2024, time.January, 15)
	end := day(2024, time.June, 10)
	records := []Record{
		{Date: day(2024, time.February, 20), Amount: 300},
		{Date: day(2024, time.February, 25), Amount: 200},
	}

	buckets := BucketTrend(records, start, end)

	require.Len(t, buckets, 6)
	assert.Equal(t, "Jan 2024", buckets[0].Label)
	assert.Equal(t, Bucket{Label: "Feb 2024", Count: 2, Sum: 500}, buckets[1])
	assert.Equal(t, "Jun 2024", buckets[5].Label)
}

func TestBucketTrend_ExcludesOutOfRangeRecords(t *testing.T) {
	start := day(2024, time.March, 1)
	end := day(2024, time.April, 14)
	records := []Record{
		// Feb 26 sits inside the first week's period but before the range
		// start; it must not be counted.
		{Date: day(2024, time.February, 26), Amount: 500},
		{Date: day(2024, time.April, 20), Amount: 500},
	}

	buckets := BucketTrend(records, start, end)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Count, "bucket %s", b.Label)
	}
}

func TestBucketTrend_SwappedBounds(t *testing.T) {
	start := day(2024, time.January, 1)
	end := day(2024, time.January, 10)

	assert.Equal(t, BucketTrend(nil, start, end), BucketTrend(nil, end, start))
}
