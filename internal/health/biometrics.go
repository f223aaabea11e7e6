// Package health derives biometric values (BMI, BMR, TDEE, body fat,
// macros) from user anthropometrics. All functions are pure.
package health

import (
	"fmt"
	"math"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive:
		return true
	default:
		return false
	}
}

// activityMultipliers convert BMR to TDEE.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityVeryActive: 1.725,
}

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// Profile holds the anthropometrics the calculator needs. Lengths are in
// centimeters, weight in kilograms.
type Profile struct {
	Age      int
	Gender   Gender
	HeightCM float64
	WeightKG float64
	NeckCM   float64
	WaistCM  float64
	HipCM    float64
	Activity ActivityLevel
}

// Biometrics is the derived output consumed by the workout generator and
// the presentation layer.
type Biometrics struct {
	BMI         float64
	BMICategory BMICategory
	BMR         float64
	TDEE        float64
	BodyFatPct  float64
	Macros      Macros
}

// Macros is a daily macronutrient target.
type Macros struct {
	Calories int
	ProteinG int
	CarbsG   int
	FatsG    int
}

// Default body fat percentages used when the US Navy formula cannot be
// evaluated (e.g. waist <= neck). Roughly category averages.
const (
	defaultBodyFatMale   = 18.0
	defaultBodyFatFemale = 25.0
)

// BMI computes weight / height^2 with height in meters.
func BMI(weightKG, heightCM float64) (float64, error) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, fmt.Errorf("invalid anthropometrics: weight=%.1f height=%.1f", weightKG, heightCM)
	}
	m := heightCM / 100
	return weightKG / (m * m), nil
}

// CategoryForBMI buckets a BMI value.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMR computes basal metabolic rate via Mifflin-St Jeor.
func BMR(p Profile) (float64, error) {
	if p.WeightKG <= 0 || p.HeightCM <= 0 || p.Age <= 0 {
		return 0, fmt.Errorf("invalid profile for BMR: weight=%.1f height=%.1f age=%d", p.WeightKG, p.HeightCM, p.Age)
	}
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// TDEE scales BMR by the activity multiplier. Unknown levels fall back
// to sedentary.
func TDEE(bmr float64, activity ActivityLevel) float64 {
	mult, ok := activityMultipliers[activity]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	return bmr * mult
}

// BodyFatPct estimates body fat via the US Navy method. Measurements
// that would push a logarithm non-positive (waist <= neck, or the
// female waist+hip-neck <= 0) fall back to a category-average default
// instead of propagating NaN.
func BodyFatPct(p Profile) float64 {
	if p.HeightCM <= 0 {
		return defaultFor(p.Gender)
	}
	if p.Gender == GenderMale {
		girth := p.WaistCM - p.NeckCM
		if girth <= 0 {
			return defaultFor(p.Gender)
		}
		pct := 86.010*math.Log10(girth) - 70.041*math.Log10(p.HeightCM) + 36.76
		return clampPct(pct, p.Gender)
	}
	girth := p.WaistCM + p.HipCM - p.NeckCM
	if girth <= 0 {
		return defaultFor(p.Gender)
	}
	pct := 163.205*math.Log10(girth) - 97.684*math.Log10(p.HeightCM) - 78.387
	return clampPct(pct, p.Gender)
}

func defaultFor(g Gender) float64 {
	if g == GenderFemale {
		return defaultBodyFatFemale
	}
	return defaultBodyFatMale
}

func clampPct(pct float64, g Gender) float64 {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct <= 0 {
		return defaultFor(g)
	}
	if pct > 75 {
		return 75
	}
	return pct
}

// MacrosFor derives daily macro targets from TDEE and body weight:
// protein 2.2 g/kg, carbs 40% of calories, fats 25% of calories.
func MacrosFor(tdee, weightKG float64) Macros {
	calories := int(math.Round(tdee))
	return Macros{
		Calories: calories,
		ProteinG: int(math.Round(weightKG * 2.2)),
		CarbsG:   int(math.Round(0.4 * float64(calories) / 4)),
		FatsG:    int(math.Round(0.25 * float64(calories) / 9)),
	}
}

// Calculate derives the full biometric set from a profile.
func Calculate(p Profile) (Biometrics, error) {
	bmi, err := BMI(p.WeightKG, p.HeightCM)
	if err != nil {
		return Biometrics{}, err
	}
	bmr, err := BMR(p)
	if err != nil {
		return Biometrics{}, err
	}
	tdee := TDEE(bmr, p.Activity)

	return Biometrics{
		BMI:         bmi,
		BMICategory: CategoryForBMI(bmi),
		BMR:         bmr,
		TDEE:        tdee,
		BodyFatPct:  BodyFatPct(p),
		Macros:      MacrosFor(tdee, p.WeightKG),
	}, nil
}
