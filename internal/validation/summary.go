package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/insightx/txgen/internal/config"
	"github.com/insightx/txgen/internal/model"
)

// Summary holds descriptive statistics over an assembled dataset.
// Rate fields are nil when their slice is empty (no division by zero);
// the report renders them as "n/a".
type Summary struct {
	TotalRecords int

	// Timestamp range of the dataset; zero times when the dataset is empty.
	DateRangeStart time.Time
	DateRangeEnd   time.Time

	TransactionTypeCounts map[string]int

	OverallFailureRate        *float64
	FraudFlagRate             *float64
	WeekendBillPayFailureRate *float64
	HighValueFraudRate        *float64

	AvgAmountByDevice map[string]float64
}

// Summarize computes descriptive statistics for the dataset. It tolerates
// empty datasets and empty slices (e.g. zero weekend Bill Payment rows) by
// leaving the corresponding rate nil.
func Summarize(ds model.Dataset, cfg *config.Config) *Summary {
	s := &Summary{
		TotalRecords:          len(ds),
		TransactionTypeCounts: make(map[string]int),
		AvgAmountByDevice:     make(map[string]float64),
	}

	if len(ds) == 0 {
		return s
	}

	s.DateRangeStart = ds[0].Timestamp
	s.DateRangeEnd = ds[0].Timestamp

	var (
		failed          int
		fraudFlagged    int
		weekendBillPay  int
		weekendBPFailed int
		highValue       int
		highValueFraud  int

		deviceTotals = make(map[string]float64)
		deviceCounts = make(map[string]int)
	)

	for _, t := range ds {
		if t.Timestamp.Before(s.DateRangeStart) {
			s.DateRangeStart = t.Timestamp
		}
		if t.Timestamp.After(s.DateRangeEnd) {
			s.DateRangeEnd = t.Timestamp
		}

		s.TransactionTypeCounts[t.TransactionType]++

		if t.TransactionStatus == model.StatusFailed {
			failed++
		}
		if t.FraudFlag == 1 {
			fraudFlagged++
		}

		if t.TransactionType == model.TypeBillPayment && t.IsWeekend == 1 {
			weekendBillPay++
			if t.TransactionStatus == model.StatusFailed {
				weekendBPFailed++
			}
		}
		if t.AmountINR > cfg.HighValueThreshold {
			highValue++
			if t.FraudFlag == 1 {
				highValueFraud++
			}
		}

		deviceTotals[t.DeviceType] += t.AmountINR
		deviceCounts[t.DeviceType]++
	}

	s.OverallFailureRate = ratio(failed, len(ds))
	s.FraudFlagRate = ratio(fraudFlagged, len(ds))
	s.WeekendBillPayFailureRate = ratio(weekendBPFailed, weekendBillPay)
	s.HighValueFraudRate = ratio(highValueFraud, highValue)

	for device, total := range deviceTotals {
		s.AvgAmountByDevice[device] = total / float64(deviceCounts[device])
	}

	return s
}

// ratio returns num/den, or nil when the denominator slice is empty.
func ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	r := float64(num) / float64(den)
	return &r
}

// Render formats the summary as the human-readable CLI report.
func (s *Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset Summary:\n")
	fmt.Fprintf(&b, "  Total records: %d\n", s.TotalRecords)
	if s.TotalRecords > 0 {
		fmt.Fprintf(&b, "  Date range: %s to %s\n",
			s.DateRangeStart.Format("2006-01-02"),
			s.DateRangeEnd.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "  Date range: n/a\n")
	}

	fmt.Fprintf(&b, "  Transaction types:\n")
	types := make([]string, 0, len(s.TransactionTypeCounts))
	for txType := range s.TransactionTypeCounts {
		types = append(types, txType)
	}
	sort.Strings(types)
	for _, txType := range types {
		fmt.Fprintf(&b, "    %-13s %d\n", txType+":", s.TransactionTypeCounts[txType])
	}

	fmt.Fprintf(&b, "  Overall failure rate: %s\n", percent(s.OverallFailureRate))
	fmt.Fprintf(&b, "  Overall fraud flag rate: %s\n", percent(s.FraudFlagRate))
	fmt.Fprintf(&b, "  Weekend Bill Payment failure rate: %s\n", percent(s.WeekendBillPayFailureRate))
	fmt.Fprintf(&b, "  High-value fraud rate: %s\n", percent(s.HighValueFraudRate))

	fmt.Fprintf(&b, "  Avg amount by device:\n")
	devices := make([]string, 0, len(s.AvgAmountByDevice))
	for device := range s.AvgAmountByDevice {
		devices = append(devices, device)
	}
	sort.Strings(devices)
	for _, device := range devices {
		fmt.Fprintf(&b, "    %-8s INR %.2f\n", device+":", s.AvgAmountByDevice[device])
	}

	return b.String()
}

func percent(rate *float64) string {
	if rate == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *rate*100)
}
