// =============================================================================
// txgen - Transaction Data Model
// =============================================================================
//
// This module defines the transaction record produced by the generator and
// the stable column schema consumed by downstream reporting collaborators.
//
// SCHEMA CONTRACT:
//   The column order and names in Columns are a stable external interface.
//   Dashboards and report pages load the persisted CSV by header name, so
//   renaming or reordering columns is a breaking change.
//
// NULLABILITY:
//   merchant_category and receiver_age_group are conditionally absent fields.
//   Absence is represented as the empty string and serialized as an empty CSV
//   cell - the column itself is always present in every row.
//
// =============================================================================

package model

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// TimestampLayout is the serialized form of the timestamp column.
// Second resolution; the generator never produces sub-second offsets.
const TimestampLayout = "2006-01-02 15:04:05"

// Transaction type labels.
const (
	TypeP2P         = "P2P"
	TypeP2M         = "P2M"
	TypeBillPayment = "Bill Payment"
	TypeRecharge    = "Recharge"
)

// Transaction status labels.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Columns is the ordered header of the persisted dataset.
var Columns = []string{
	"transaction_id",
	"timestamp",
	"transaction_type",
	"merchant_category",
	"amount_inr",
	"transaction_status",
	"sender_age_group",
	"receiver_age_group",
	"sender_state",
	"sender_bank",
	"receiver_bank",
	"device_type",
	"network_type",
	"fraud_flag",
	"hour_of_day",
	"day_of_week",
	"is_weekend",
}

// Transaction is a single generated payment-transaction record.
// Records are immutable once produced by the generator.
type Transaction struct {
	TransactionID     string
	Timestamp         time.Time
	TransactionType   string
	MerchantCategory  string // empty iff TransactionType == P2P
	AmountINR         float64
	TransactionStatus string
	SenderAgeGroup    string
	ReceiverAgeGroup  string // non-empty iff TransactionType == P2P
	SenderState       string
	SenderBank        string
	ReceiverBank      string
	DeviceType        string
	NetworkType       string
	FraudFlag         int // 0 or 1
	HourOfDay         int // 0-23, derived from Timestamp
	DayOfWeek         string
	IsWeekend         int // 0 or 1, derived from Timestamp
}

// DerivedFields computes the timestamp-derived columns.
// The generator stores these on the record; the validator recomputes them
// to check consistency.
func DerivedFields(ts time.Time) (hourOfDay int, dayOfWeek string, isWeekend int) {
	hourOfDay = ts.Hour()
	dayOfWeek = ts.Weekday().String()
	if ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday {
		isWeekend = 1
	}
	return hourOfDay, dayOfWeek, isWeekend
}

// CSVRow serializes the transaction in Columns order.
func (t Transaction) CSVRow() []string {
	return []string{
		t.TransactionID,
		t.Timestamp.Format(TimestampLayout),
		t.TransactionType,
		t.MerchantCategory,
		strconv.FormatFloat(t.AmountINR, 'f', 2, 64),
		t.TransactionStatus,
		t.SenderAgeGroup,
		t.ReceiverAgeGroup,
		t.SenderState,
		t.SenderBank,
		t.ReceiverBank,
		t.DeviceType,
		t.NetworkType,
		strconv.Itoa(t.FraudFlag),
		strconv.Itoa(t.HourOfDay),
		t.DayOfWeek,
		strconv.Itoa(t.IsWeekend),
	}
}

// FromCSVRow parses a row in Columns order back into a Transaction.
func FromCSVRow(row []string) (Transaction, error) {
	if len(row) != len(Columns) {
		return Transaction{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(row))
	}

	ts, err := time.ParseInLocation(TimestampLayout, row[1], time.Local)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid timestamp %q: %w", row[1], err)
	}

	amount, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount_inr %q: %w", row[4], err)
	}

	fraudFlag, err := strconv.Atoi(row[13])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid fraud_flag %q: %w", row[13], err)
	}

	hourOfDay, err := strconv.Atoi(row[14])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid hour_of_day %q: %w", row[14], err)
	}

	isWeekend, err := strconv.Atoi(row[16])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid is_weekend %q: %w", row[16], err)
	}

	return Transaction{
		TransactionID:     row[0],
		Timestamp:         ts,
		TransactionType:   row[2],
		MerchantCategory:  row[3],
		AmountINR:         amount,
		TransactionStatus: row[5],
		SenderAgeGroup:    row[6],
		ReceiverAgeGroup:  row[7],
		SenderState:       row[8],
		SenderBank:        row[9],
		ReceiverBank:      row[10],
		DeviceType:        row[11],
		NetworkType:       row[12],
		FraudFlag:         fraudFlag,
		HourOfDay:         hourOfDay,
		DayOfWeek:         row[15],
		IsWeekend:         isWeekend,
	}, nil
}

// Dataset is an assembled table of transactions.
type Dataset []Transaction

// SortByTimestamp orders the dataset ascending by timestamp.
// Ties keep generation order so a seeded run stays byte-identical.
func (d Dataset) SortByTimestamp() {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].Timestamp.Before(d[j].Timestamp)
	})
}
