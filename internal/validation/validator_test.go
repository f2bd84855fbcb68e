package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightx/txgen/internal/config"
	"github.com/insightx/txgen/internal/model"
)

// makeTx builds a structurally valid transaction for validator tests.
func makeTx(txType, device string, amount float64, ts time.Time) model.Transaction {
	hourOfDay, dayOfWeek, isWeekend := model.DerivedFields(ts)

	tx := model.Transaction{
		TransactionID:     "TXN000000000001",
		Timestamp:         ts,
		TransactionType:   txType,
		AmountINR:         amount,
		TransactionStatus: model.StatusSuccess,
		SenderAgeGroup:    "26-35",
		SenderState:       "Karnataka",
		SenderBank:        "SBI",
		ReceiverBank:      "HDFC",
		DeviceType:        device,
		NetworkType:       "4G",
		HourOfDay:         hourOfDay,
		DayOfWeek:         dayOfWeek,
		IsWeekend:         isWeekend,
	}

	if txType == model.TypeP2P {
		tx.ReceiverAgeGroup = "18-25"
	} else {
		tx.MerchantCategory = "Food"
		if txType != model.TypeP2M {
			tx.MerchantCategory = "Utilities"
		}
	}

	return tx
}

var (
	weekday = time.Date(2024, 6, 12, 10, 30, 0, 0, time.UTC) // Wednesday
	weekend = time.Date(2024, 6, 15, 21, 5, 0, 0, time.UTC)  // Saturday
)

func TestValidateCleanDataset(t *testing.T) {
	ds := model.Dataset{
		makeTx(model.TypeP2P, "Android", 120.50, weekday),
		makeTx(model.TypeP2M, "iOS", 999.99, weekend),
		makeTx(model.TypeBillPayment, "Web", 4500.00, weekday),
		makeTx(model.TypeRecharge, "Android", 199.00, weekend),
	}

	assert.Empty(t, Validate(ds, config.Default()))
}

// Every rule is checked independently: a dataset violating all of them at
// once must report all of them, not just the first.
func TestValidateReportsAllViolations(t *testing.T) {
	p2pWithMerchant := makeTx(model.TypeP2P, "Android", 100, weekday)
	p2pWithMerchant.MerchantCategory = "Food"

	p2pNoReceiverAge := makeTx(model.TypeP2P, "Android", 100, weekday)
	p2pNoReceiverAge.ReceiverAgeGroup = ""

	p2mNoMerchant := makeTx(model.TypeP2M, "iOS", 100, weekday)
	p2mNoMerchant.MerchantCategory = ""

	rechargeWithReceiverAge := makeTx(model.TypeRecharge, "Web", 500, weekday)
	rechargeWithReceiverAge.ReceiverAgeGroup = "36-45"

	staleDerived := makeTx(model.TypeP2P, "Android", 100, weekend)
	staleDerived.IsWeekend = 0
	staleDerived.DayOfWeek = "Monday"

	outOfRange := makeTx(model.TypeRecharge, "iOS", 3500, weekday) // Recharge caps at 2000

	ds := model.Dataset{
		p2pWithMerchant,
		p2pNoReceiverAge,
		p2mNoMerchant,
		rechargeWithReceiverAge,
		staleDerived,
		outOfRange,
	}

	violations := Validate(ds, config.Default())

	rules := make([]string, 0, len(violations))
	for _, v := range violations {
		rules = append(rules, v.Rule)
	}
	assert.ElementsMatch(t, []string{
		RuleP2PMerchantAbsent,
		RuleP2PReceiverAge,
		RuleNonP2PMerchant,
		RuleNonP2PReceiverAge,
		RuleDerivedFields,
		RuleAmountRange,
	}, rules)

	for _, v := range violations {
		assert.Equal(t, 1, v.Count, "rule %s", v.Rule)
		assert.NotEmpty(t, v.SampleID)
		assert.NotEmpty(t, v.String())
	}
}

func TestValidateCountsOffendingRows(t *testing.T) {
	bad := makeTx(model.TypeP2P, "Android", 100, weekday)
	bad.MerchantCategory = "Fuel"

	ds := model.Dataset{bad, bad, bad}
	violations := Validate(ds, config.Default())

	require.Len(t, violations, 1)
	assert.Equal(t, RuleP2PMerchantAbsent, violations[0].Rule)
	assert.Equal(t, 3, violations[0].Count)
}

func TestSummarizeComputesRates(t *testing.T) {
	cfg := config.Default()

	failedWeekendBP := makeTx(model.TypeBillPayment, "Web", 2000, weekend)
	failedWeekendBP.TransactionStatus = model.StatusFailed

	okWeekendBP := makeTx(model.TypeBillPayment, "Web", 2000, weekend)

	highValueFraud := makeTx(model.TypeP2P, "Web", 60000, weekday)
	highValueFraud.FraudFlag = 1

	p2p := makeTx(model.TypeP2P, "Android", 150, weekday)

	ds := model.Dataset{failedWeekendBP, okWeekendBP, highValueFraud, p2p}
	s := Summarize(ds, cfg)

	assert.Equal(t, 4, s.TotalRecords)
	assert.Equal(t, weekday, s.DateRangeStart)
	assert.Equal(t, weekend, s.DateRangeEnd)
	assert.Equal(t, map[string]int{
		model.TypeBillPayment: 2,
		model.TypeP2P:         2,
	}, s.TransactionTypeCounts)

	require.NotNil(t, s.OverallFailureRate)
	assert.InDelta(t, 0.25, *s.OverallFailureRate, 1e-9)

	require.NotNil(t, s.FraudFlagRate)
	assert.InDelta(t, 0.25, *s.FraudFlagRate, 1e-9)

	require.NotNil(t, s.WeekendBillPayFailureRate)
	assert.InDelta(t, 0.5, *s.WeekendBillPayFailureRate, 1e-9)

	require.NotNil(t, s.HighValueFraudRate)
	assert.InDelta(t, 1.0, *s.HighValueFraudRate, 1e-9)

	assert.InDelta(t, (2000.0+2000.0+60000.0)/3, s.AvgAmountByDevice["Web"], 1e-9)
	assert.InDelta(t, 150.0, s.AvgAmountByDevice["Android"], 1e-9)
}

func TestSummarizeEmptySlicesAreUndefined(t *testing.T) {
	cfg := config.Default()

	t.Run("no weekend bill payments and no high-value rows", func(t *testing.T) {
		ds := model.Dataset{makeTx(model.TypeP2P, "Android", 150, weekday)}
		s := Summarize(ds, cfg)

		require.NotNil(t, s.OverallFailureRate)
		assert.Nil(t, s.WeekendBillPayFailureRate)
		assert.Nil(t, s.HighValueFraudRate)
	})

	t.Run("empty dataset", func(t *testing.T) {
		s := Summarize(model.Dataset{}, cfg)

		assert.Equal(t, 0, s.TotalRecords)
		assert.Nil(t, s.OverallFailureRate)
		assert.Nil(t, s.FraudFlagRate)
		assert.Nil(t, s.WeekendBillPayFailureRate)
		assert.Nil(t, s.HighValueFraudRate)
		assert.Empty(t, s.AvgAmountByDevice)

		rendered := s.Render()
		assert.Contains(t, rendered, "Total records: 0")
		assert.Contains(t, rendered, "n/a")
	})
}

func TestSummaryRender(t *testing.T) {
	ds := model.Dataset{
		makeTx(model.TypeBillPayment, "Web", 2000, weekend),
		makeTx(model.TypeP2P, "Android", 150, weekday),
	}
	rendered := Summarize(ds, config.Default()).Render()

	assert.Contains(t, rendered, "Total records: 2")
	assert.Contains(t, rendered, "Bill Payment")
	assert.Contains(t, rendered, "Overall failure rate: 0.0%")
	assert.Contains(t, rendered, "Weekend Bill Payment failure rate: 0.0%")
	assert.Contains(t, rendered, "High-value fraud rate: n/a")
}
