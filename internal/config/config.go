// =============================================================================
// txgen - Generator Profile Configuration
// =============================================================================
//
// This module defines the static configuration tables that drive the
// generator: weighted categorical distributions, device amount ranges,
// per-type amount narrowing, and the conditional failure/fraud rates.
//
// PROFILE LOADING:
//   The built-in profile (Default) mirrors the tuned demo distributions the
//   dashboards are calibrated against. A YAML profile file can override any
//   subset of it; overrides are validated the same way as the defaults.
//
// ERROR HANDLING:
//   Malformed tables (label/weight length mismatch, non-positive bounds,
//   rates outside [0,1]) are fatal configuration errors reported by
//   Validate() at load/construction time, never per record.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/insightx/txgen/internal/model"
)

// WeightedLabels is a categorical distribution: parallel label and weight
// slices. Weights need not sum to exactly 1; draws normalize by the total.
type WeightedLabels struct {
	Labels  []string  `yaml:"labels"`
	Weights []float64 `yaml:"weights"`
}

// AmountRange is an inclusive amount interval in INR.
type AmountRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// TypeLimit narrows a device amount range for one transaction type.
// A zero Floor or Cap means "no narrowing" for that side.
type TypeLimit struct {
	Floor float64 `yaml:"floor"`
	Cap   float64 `yaml:"cap"`
}

// Config is a complete generator profile. It is immutable once validated;
// each Generator instance owns its own copy so independently-seeded
// generators never interfere.
type Config struct {
	// DaysBack is the length of the trailing window, ending at the
	// generator's reference time, that timestamps are drawn from.
	DaysBack int `yaml:"days_back"`

	TransactionTypes WeightedLabels `yaml:"transaction_types"`

	// MerchantCategoriesByType lists the valid merchant categories for each
	// non-P2P transaction type. P2P intentionally has no entry: the record
	// never carries a merchant category for P2P.
	MerchantCategoriesByType map[string][]string `yaml:"merchant_categories_by_type"`

	AgeGroups    WeightedLabels `yaml:"age_groups"`
	SenderStates WeightedLabels `yaml:"sender_states"`
	Banks        WeightedLabels `yaml:"banks"`
	DeviceTypes  WeightedLabels `yaml:"device_types"`
	NetworkTypes WeightedLabels `yaml:"network_types"`

	// AmountRanges maps device type to its base amount range.
	AmountRanges map[string]AmountRange `yaml:"amount_ranges"`

	// TypeLimits further narrows the device range per transaction type.
	TypeLimits map[string]TypeLimit `yaml:"type_limits"`

	// Failure rates: the weekend rate applies only to Bill Payment
	// transactions on Saturday/Sunday, the base rate everywhere else.
	BaseFailureRate           float64 `yaml:"base_failure_rate"`
	WeekendBillPayFailureRate float64 `yaml:"weekend_billpay_failure_rate"`

	// Fraud rates: the high-value rate applies to amounts strictly above
	// HighValueThreshold, the base rate everywhere else.
	BaseFraudRate      float64 `yaml:"base_fraud_rate"`
	HighValueFraudRate float64 `yaml:"high_value_fraud_rate"`
	HighValueThreshold float64 `yaml:"high_value_threshold"`
}

// Default returns the built-in generator profile.
func Default() *Config {
	return &Config{
		DaysBack: 30,

		TransactionTypes: WeightedLabels{
			Labels:  []string{model.TypeP2P, model.TypeP2M, model.TypeBillPayment, model.TypeRecharge},
			Weights: []float64{0.35, 0.35, 0.20, 0.10},
		},

		MerchantCategoriesByType: map[string][]string{
			model.TypeP2M:         {"Food", "Grocery", "Fuel", "Entertainment"},
			model.TypeBillPayment: {"Utilities"},
			model.TypeRecharge:    {"Utilities"},
		},

		AgeGroups: WeightedLabels{
			Labels:  []string{"18-25", "26-35", "36-45", "46-55", "56+"},
			Weights: []float64{0.25, 0.35, 0.20, 0.12, 0.08}, // younger skew
		},

		SenderStates: WeightedLabels{
			Labels: []string{
				"Maharashtra", "Karnataka", "Tamil Nadu", "Delhi", "Gujarat",
				"Rajasthan", "Uttar Pradesh", "West Bengal", "Telangana", "Kerala",
			},
			Weights: []float64{0.18, 0.15, 0.12, 0.12, 0.10, 0.08, 0.08, 0.07, 0.06, 0.04},
		},

		Banks: WeightedLabels{
			Labels:  []string{"SBI", "HDFC", "ICICI", "Axis", "Yes Bank"},
			Weights: []float64{0.30, 0.25, 0.20, 0.15, 0.10},
		},

		DeviceTypes: WeightedLabels{
			Labels:  []string{"Android", "iOS", "Web"},
			Weights: []float64{0.60, 0.30, 0.10},
		},

		NetworkTypes: WeightedLabels{
			Labels:  []string{"4G", "5G", "WiFi"},
			Weights: []float64{0.50, 0.30, 0.20},
		},

		AmountRanges: map[string]AmountRange{
			"Android": {Min: 10.0, Max: 25000.0},
			"iOS":     {Min: 50.0, Max: 45000.0},  // higher floor and ceiling
			"Web":     {Min: 100.0, Max: 75000.0}, // web skews to larger transactions
		},

		TypeLimits: map[string]TypeLimit{
			model.TypeRecharge:    {Floor: 10.0, Cap: 2000.0},
			model.TypeBillPayment: {Floor: 100.0, Cap: 50000.0},
			model.TypeP2M:         {Floor: 20.0, Cap: 30000.0},
			// P2P keeps the full device range.
		},

		BaseFailureRate:           0.05,
		WeekendBillPayFailureRate: 0.20,
		BaseFraudRate:             0.02,
		HighValueFraudRate:        0.10,
		HighValueThreshold:        50000.0,
	}
}

// Load reads a YAML profile file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the profile for fatal configuration errors.
func (c *Config) Validate() error {
	if c.DaysBack <= 0 {
		return fmt.Errorf("days_back must be positive, got %d", c.DaysBack)
	}

	dists := map[string]WeightedLabels{
		"transaction_types": c.TransactionTypes,
		"age_groups":        c.AgeGroups,
		"sender_states":     c.SenderStates,
		"banks":             c.Banks,
		"device_types":      c.DeviceTypes,
		"network_types":     c.NetworkTypes,
	}
	for name, dist := range dists {
		if err := dist.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	for _, txType := range c.TransactionTypes.Labels {
		if txType == model.TypeP2P {
			continue
		}
		if len(c.MerchantCategoriesByType[txType]) == 0 {
			return fmt.Errorf("merchant_categories_by_type: no categories for %q", txType)
		}
	}

	if len(c.AmountRanges) == 0 {
		return fmt.Errorf("amount_ranges must not be empty")
	}
	for device, r := range c.AmountRanges {
		if r.Min <= 0 || r.Max <= r.Min {
			return fmt.Errorf("amount_ranges[%s]: invalid range [%v, %v]", device, r.Min, r.Max)
		}
	}
	for txType, lim := range c.TypeLimits {
		if lim.Floor < 0 || lim.Cap < 0 {
			return fmt.Errorf("type_limits[%s]: negative bound", txType)
		}
		if lim.Floor > 0 && lim.Cap > 0 && lim.Cap < lim.Floor {
			return fmt.Errorf("type_limits[%s]: cap %v below floor %v", txType, lim.Cap, lim.Floor)
		}
	}

	// Cross-check: every drawable (device, type) pair must resolve to a
	// usable range, including devices that fall back to the Android range.
	for _, device := range c.DeviceTypes.Labels {
		for _, txType := range c.TransactionTypes.Labels {
			minAmt, maxAmt := c.AmountBounds(device, txType)
			if minAmt >= maxAmt {
				return fmt.Errorf("amount bounds for (%s, %s) collapse to [%v, %v]",
					device, txType, minAmt, maxAmt)
			}
		}
	}

	rates := map[string]float64{
		"base_failure_rate":            c.BaseFailureRate,
		"weekend_billpay_failure_rate": c.WeekendBillPayFailureRate,
		"base_fraud_rate":              c.BaseFraudRate,
		"high_value_fraud_rate":        c.HighValueFraudRate,
	}
	for name, rate := range rates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, rate)
		}
	}

	if c.HighValueThreshold <= 0 {
		return fmt.Errorf("high_value_threshold must be positive, got %v", c.HighValueThreshold)
	}

	return nil
}

func (w WeightedLabels) validate() error {
	if len(w.Labels) == 0 {
		return fmt.Errorf("no labels defined")
	}
	if len(w.Labels) != len(w.Weights) {
		return fmt.Errorf("%d labels but %d weights", len(w.Labels), len(w.Weights))
	}

	var total float64
	for i, weight := range w.Weights {
		if weight < 0 {
			return fmt.Errorf("negative weight %v for label %q", weight, w.Labels[i])
		}
		total += weight
	}
	if total <= 0 {
		return fmt.Errorf("weights sum to %v, need a positive total", total)
	}

	return nil
}

// AmountBounds resolves the inclusive amount range for a (device type,
// transaction type) pair: the device base range narrowed by the type limit.
func (c *Config) AmountBounds(deviceType, txType string) (minAmt, maxAmt float64) {
	r, ok := c.AmountRanges[deviceType]
	if !ok {
		r = c.AmountRanges["Android"]
	}
	minAmt, maxAmt = r.Min, r.Max

	// A type floor only ever raises the device floor, so device-level lower
	// bounds (e.g. the iOS minimum) hold for every transaction type.
	if lim, ok := c.TypeLimits[txType]; ok {
		if lim.Floor > minAmt {
			minAmt = lim.Floor
		}
		if lim.Cap > 0 && lim.Cap < maxAmt {
			maxAmt = lim.Cap
		}
	}

	return minAmt, maxAmt
}
