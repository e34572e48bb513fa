package valuation

import (
	"math"
	"time"
)

// Estimate is a point value with a low/high range, in whole dollars.
// Low <= Point <= High always holds.
type Estimate struct {
	Point float64
	Low   float64
	High  float64
}

// Estimator prices a vehicle from sparse attributes using an anchor price,
// an age-indexed retained-value curve, mileage and condition adjustments and
// a brand retention factor. It is a pure function over the calibration data:
// no I/O, bounded time, never fails.
type Estimator struct {
	cal *Calibration
	now func() time.Time
}

func NewEstimator(cal *Calibration) *Estimator {
	return &Estimator{cal: cal, now: time.Now}
}

// Estimate produces a valuation for the given vehicle. Unknown makes, models
// and conditions degrade to neutral defaults instead of erroring.
func (e *Estimator) Estimate(make, model string, year, mileage int, condition string) Estimate {
	age := e.now().Year() - year
	if age < 0 {
		age = 0
	}

	value := e.cal.ResolveAnchor(make, model, year)
	value *= e.cal.RetainedFraction(age)
	value *= 1 + e.mileageAdjustment(age, mileage)
	value *= e.cal.ConditionMultiplier(condition)
	value *= e.cal.BrandFactor(make)

	if floor := e.cal.Floor(age); value < floor {
		value = floor
	}

	return Estimate{
		Point: math.Round(value),
		Low:   math.Round(value * e.cal.LowFactor),
		High:  math.Round(value * e.cal.HighFactor),
	}
}

// mileageAdjustment computes the fractional value adjustment for mileage
// relative to the expected baseline for the vehicle's age. Below-expected
// mileage earns a bonus, above-expected a penalty, capped in both directions.
// Very high absolute mileage erodes the bonus and adds its own penalty
// regardless of age.
func (e *Estimator) mileageAdjustment(age, mileage int) float64 {
	m := e.cal.Mileage

	expected := age * e.cal.AnnualMileage
	diff := float64(mileage - expected)
	adj := -(diff / 10000) * m.Per10kFactor

	over := float64(mileage - m.HighMileageThreshold)
	if over > 0 {
		if adj > 0 {
			damping := 1 - over/float64(m.BonusDampingRange)
			if damping < 0 {
				damping = 0
			}
			adj *= damping
		}
		adj -= (over / 10000) * m.HighMileagePer10kPenalty
	}

	return math.Max(m.MinAdjustment, math.Min(m.MaxAdjustment, adj))
}
