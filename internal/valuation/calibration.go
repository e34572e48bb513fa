package valuation

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed calibration.yaml
var defaultCalibration []byte

// Calibration holds the declarative pricing data the retention model runs on:
// anchor tables, the retained-value curve and the various multipliers. It is
// data, not code, so the matching logic and the numbers stay separately
// testable.
type Calibration struct {
	BaselineYear        int       `yaml:"baseline_year"`
	PreBaselineDeflator float64   `yaml:"pre_baseline_deflator"`
	DefaultAnchor       float64   `yaml:"default_anchor"`
	AnnualMileage       int       `yaml:"annual_mileage"`
	RetainedCurve       []float64 `yaml:"retained_curve"`
	CurveTailDecay      float64   `yaml:"curve_tail_decay"`

	Mileage struct {
		Per10kFactor             float64 `yaml:"per_10k_factor"`
		MinAdjustment            float64 `yaml:"min_adjustment"`
		MaxAdjustment            float64 `yaml:"max_adjustment"`
		HighMileageThreshold     int     `yaml:"high_mileage_threshold"`
		HighMileagePer10kPenalty float64 `yaml:"high_mileage_per_10k_penalty"`
		BonusDampingRange        int     `yaml:"bonus_damping_range"`
	} `yaml:"mileage"`

	Conditions   map[string]float64 `yaml:"conditions"`
	BrandFactors map[string]float64 `yaml:"brand_factors"`

	Floors []FloorBand `yaml:"floors"`

	LowFactor  float64 `yaml:"low_factor"`
	HighFactor float64 `yaml:"high_factor"`

	MakeAnchors  map[string]float64            `yaml:"make_anchors"`
	ModelAnchors map[string]map[string]float64 `yaml:"model_anchors"`
}

// FloorBand gives the minimum plausible value for vehicles at or above MinAge.
type FloorBand struct {
	MinAge int     `yaml:"min_age"`
	Value  float64 `yaml:"value"`
}

// LoadCalibration parses calibration data from path, or the embedded defaults
// when path is empty.
func LoadCalibration(path string) (*Calibration, error) {
	data := defaultCalibration
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read calibration file: %w", err)
		}
	}

	var cal Calibration
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, fmt.Errorf("parse calibration: %w", err)
	}
	if err := cal.validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}

	// Floors are matched first-wins from the oldest band down.
	sort.Slice(cal.Floors, func(i, j int) bool {
		return cal.Floors[i].MinAge > cal.Floors[j].MinAge
	})

	return &cal, nil
}

func (c *Calibration) validate() error {
	if len(c.RetainedCurve) == 0 {
		return fmt.Errorf("retained_curve is empty")
	}
	for i := 1; i < len(c.RetainedCurve); i++ {
		if c.RetainedCurve[i] > c.RetainedCurve[i-1] {
			return fmt.Errorf("retained_curve not monotonically decreasing at age %d", i)
		}
	}
	if c.LowFactor <= 0 || c.HighFactor < 1 {
		return fmt.Errorf("low_factor/high_factor out of range")
	}
	if c.DefaultAnchor <= 0 {
		return fmt.Errorf("default_anchor must be positive")
	}
	if len(c.Floors) == 0 {
		return fmt.Errorf("floors is empty")
	}
	return nil
}

// ResolveAnchor finds the base original-price anchor for a vehicle through a
// layered lookup: exact (make, model) match, then substring/prefix matching
// against known model fragments (so "ES 350" resolves via "es"), then the
// make-level average, and finally the global default. It never fails.
func (c *Calibration) ResolveAnchor(make, model string, year int) float64 {
	mk := strings.ToLower(strings.TrimSpace(make))
	md := strings.ToLower(strings.TrimSpace(model))

	anchor, ok := c.lookupAnchor(mk, md)
	if !ok {
		anchor, ok = c.MakeAnchors[mk]
		if !ok {
			anchor = c.DefaultAnchor
		}
	}

	// Vehicles were cheaper historically; deflate the anchor per year before
	// the baseline.
	if year < c.BaselineYear {
		for i := 0; i < c.BaselineYear-year; i++ {
			anchor *= c.PreBaselineDeflator
		}
	}

	return anchor
}

func (c *Calibration) lookupAnchor(mk, md string) (float64, bool) {
	models, ok := c.ModelAnchors[mk]
	if !ok {
		return 0, false
	}
	if v, ok := models[md]; ok {
		return v, true
	}

	// Substring scan handles trims and suffixes. Longer fragments win so
	// "grand cherokee" is preferred over "cherokee".
	var bestKey string
	var bestVal float64
	for key, val := range models {
		if strings.HasPrefix(md, key) || strings.Contains(md, key) {
			if len(key) > len(bestKey) {
				bestKey, bestVal = key, val
			}
		}
	}
	if bestKey != "" {
		return bestVal, true
	}
	return 0, false
}

// RetainedFraction returns the fraction of the anchor a vehicle holds at the
// given age in whole years, with exponential decay beyond the curve's range.
func (c *Calibration) RetainedFraction(age int) float64 {
	if age <= 0 {
		return 1.0
	}
	if age < len(c.RetainedCurve) {
		return c.RetainedCurve[age]
	}
	f := c.RetainedCurve[len(c.RetainedCurve)-1]
	for i := len(c.RetainedCurve) - 1; i < age; i++ {
		f *= c.CurveTailDecay
	}
	return f
}

// ConditionMultiplier validates the condition string against the known tiers
// and defaults to neutral for anything unrecognized.
func (c *Calibration) ConditionMultiplier(condition string) float64 {
	if m, ok := c.Conditions[strings.ToLower(strings.TrimSpace(condition))]; ok {
		return m
	}
	return 1.0
}

// BrandFactor returns the brand-level retention multiplier, neutral for
// unknown makes.
func (c *Calibration) BrandFactor(make string) float64 {
	if f, ok := c.BrandFactors[strings.ToLower(strings.TrimSpace(make))]; ok {
		return f
	}
	return 1.0
}

// Floor returns the minimum plausible value for a vehicle of the given age.
func (c *Calibration) Floor(age int) float64 {
	for _, band := range c.Floors {
		if age >= band.MinAge {
			return band.Value
		}
	}
	return c.Floors[len(c.Floors)-1].Value
}
