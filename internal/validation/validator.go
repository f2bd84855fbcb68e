// =============================================================================
// txgen - Dataset Validation Engine
// =============================================================================
//
// This module checks an assembled dataset against the generator's business
// rules:
//   - Rule A: P2P rows have no merchant category and do have a receiver
//     age group.
//   - Rule B: non-P2P rows have a merchant category and no receiver age
//     group.
//   - Derived fields (hour_of_day, day_of_week, is_weekend) match the
//     row's timestamp.
//   - Amounts lie inside the clipped range for their (device, type) pair.
//
// ERROR HANDLING:
//   Violations are collected, not thrown. Every rule is evaluated
//   independently so simultaneous violations are all reported; callers
//   decide whether a non-empty report is fatal.
//
// =============================================================================

package validation

import (
	"fmt"

	"github.com/insightx/txgen/internal/config"
	"github.com/insightx/txgen/internal/model"
)

// Rule identifiers used in violation reports.
const (
	RuleP2PMerchantAbsent    = "p2p_merchant_absent"
	RuleP2PReceiverAge       = "p2p_receiver_age_present"
	RuleNonP2PMerchant       = "non_p2p_merchant_present"
	RuleNonP2PReceiverAge    = "non_p2p_receiver_age_absent"
	RuleDerivedFields        = "derived_fields_consistent"
	RuleAmountRange          = "amount_within_range"
)

// Violation describes one violated rule across the dataset.
type Violation struct {
	// Rule is the identifier of the violated rule.
	Rule string

	// Count is the number of offending rows.
	Count int

	// SampleID is the transaction id of the first offending row.
	SampleID string

	// Message is a human-readable description.
	Message string
}

// String renders the violation for the CLI report.
func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s (%d row(s), e.g. %s)", v.Rule, v.Message, v.Count, v.SampleID)
}

// Validate checks every rule over the full dataset and returns all
// violations found. An empty slice means the dataset is valid.
func Validate(ds model.Dataset, cfg *config.Config) []Violation {
	checks := []struct {
		rule    string
		message string
		bad     func(model.Transaction) bool
	}{
		{
			rule:    RuleP2PMerchantAbsent,
			message: "P2P transactions must have no merchant_category",
			bad: func(t model.Transaction) bool {
				return t.TransactionType == model.TypeP2P && t.MerchantCategory != ""
			},
		},
		{
			rule:    RuleP2PReceiverAge,
			message: "P2P transactions must have a receiver_age_group",
			bad: func(t model.Transaction) bool {
				return t.TransactionType == model.TypeP2P && t.ReceiverAgeGroup == ""
			},
		},
		{
			rule:    RuleNonP2PMerchant,
			message: "non-P2P transactions must have a merchant_category",
			bad: func(t model.Transaction) bool {
				return t.TransactionType != model.TypeP2P && t.MerchantCategory == ""
			},
		},
		{
			rule:    RuleNonP2PReceiverAge,
			message: "non-P2P transactions must have no receiver_age_group",
			bad: func(t model.Transaction) bool {
				return t.TransactionType != model.TypeP2P && t.ReceiverAgeGroup != ""
			},
		},
		{
			rule:    RuleDerivedFields,
			message: "derived time fields must match the timestamp",
			bad: func(t model.Transaction) bool {
				hourOfDay, dayOfWeek, isWeekend := model.DerivedFields(t.Timestamp)
				return t.HourOfDay != hourOfDay || t.DayOfWeek != dayOfWeek || t.IsWeekend != isWeekend
			},
		},
		{
			rule:    RuleAmountRange,
			message: "amount_inr must lie within the (device, type) range",
			bad: func(t model.Transaction) bool {
				minAmt, maxAmt := cfg.AmountBounds(t.DeviceType, t.TransactionType)
				return t.AmountINR < minAmt || t.AmountINR > maxAmt
			},
		},
	}

	var violations []Violation
	for _, check := range checks {
		count := 0
		sampleID := ""
		for _, t := range ds {
			if check.bad(t) {
				if count == 0 {
					sampleID = t.TransactionID
				}
				count++
			}
		}
		if count > 0 {
			violations = append(violations, Violation{
				Rule:     check.rule,
				Count:    count,
				SampleID: sampleID,
				Message:  check.message,
			})
		}
	}

	return violations
}
