package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerivedFields(t *testing.T) {
	tests := []struct {
		name      string
		ts        time.Time
		hour      int
		day       string
		isWeekend int
	}{
		{
			name:      "weekday morning",
			ts:        time.Date(2024, 6, 12, 9, 15, 0, 0, time.UTC), // Wednesday
			hour:      9,
			day:       "Wednesday",
			isWeekend: 0,
		},
		{
			name:      "saturday night",
			ts:        time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
			hour:      23,
			day:       "Saturday",
			isWeekend: 1,
		},
		{
			name:      "sunday midnight",
			ts:        time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
			hour:      0,
			day:       "Sunday",
			isWeekend: 1,
		},
		{
			name:      "friday is not weekend",
			ts:        time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC),
			hour:      18,
			day:       "Friday",
			isWeekend: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hour, day, weekend := DerivedFields(tc.ts)
			assert.Equal(t, tc.hour, hour)
			assert.Equal(t, tc.day, day)
			assert.Equal(t, tc.isWeekend, weekend)
		})
	}
}

func TestSortByTimestamp(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := Dataset{
		{TransactionID: "c", Timestamp: base.Add(2 * time.Hour)},
		{TransactionID: "a", Timestamp: base},
		{TransactionID: "b", Timestamp: base.Add(time.Hour)},
		{TransactionID: "b2", Timestamp: base.Add(time.Hour)},
	}

	ds.SortByTimestamp()

	ids := []string{ds[0].TransactionID, ds[1].TransactionID, ds[2].TransactionID, ds[3].TransactionID}
	assert.Equal(t, []string{"a", "b", "b2", "c"}, ids, "sort must be stable for equal timestamps")
}

func TestFromCSVRowRejectsBadArity(t *testing.T) {
	_, err := FromCSVRow([]string{"too", "short"})
	assert.Error(t, err)
}
