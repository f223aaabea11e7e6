package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maleProfile() Profile {
	return Profile{
		Age:      30,
		Gender:   GenderMale,
		HeightCM: 180,
		WeightKG: 80,
		NeckCM:   38,
		WaistCM:  85,
		Activity: ActivityModerate,
	}
}

func TestBMI(t *testing.T) {
	bmi, err := BMI(80, 180)
	require.NoError(t, err)
	assert.InDelta(t, 24.69, bmi, 0.01)

	_, err = BMI(0, 180)
	assert.Error(t, err)
	_, err = BMI(80, 0)
	assert.Error(t, err)
}

func TestCategoryForBMI(t *testing.T) {
	cases := []struct {
		bmi  float64
		want BMICategory
	}{
		{17.0, BMIUnderweight},
		{18.5, BMINormal},
		{24.99, BMINormal},
		{25.0, BMIOverweight},
		{29.99, BMIOverweight},
		{30.0, BMIObese},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategoryForBMI(tc.bmi), "bmi=%.2f", tc.bmi)
	}
}

func TestBMRMifflinStJeor(t *testing.T) {
	bmr, err := BMR(maleProfile())
	require.NoError(t, err)
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.InDelta(t, 1780, bmr, 0.001)

	f := maleProfile()
	f.Gender = GenderFemale
	bmr, err = BMR(f)
	require.NoError(t, err)
	// 10*80 + 6.25*180 - 5*30 - 161 = 1614
	assert.InDelta(t, 1614, bmr, 0.001)
}

func TestTDEEMultipliers(t *testing.T) {
	assert.InDelta(t, 1200, TDEE(1000, ActivitySedentary), 0.001)
	assert.InDelta(t, 1375, TDEE(1000, ActivityLight), 0.001)
	assert.InDelta(t, 1550, TDEE(1000, ActivityModerate), 0.001)
	assert.InDelta(t, 1725, TDEE(1000, ActivityVeryActive), 0.001)
	// Unknown level falls back to sedentary.
	assert.InDelta(t, 1200, TDEE(1000, ActivityLevel("extreme")), 0.001)
}

func TestBodyFatGuard(t *testing.T) {
	p := maleProfile()
	p.WaistCM = 30 // waist <= neck would make log10 blow up
	assert.Equal(t, defaultBodyFatMale, BodyFatPct(p))

	p = maleProfile()
	pct := BodyFatPct(p)
	assert.Greater(t, pct, 5.0)
	assert.Less(t, pct, 30.0)

	f := maleProfile()
	f.Gender = GenderFemale
	f.HipCM = 95
	f.WaistCM = 70
	pct = BodyFatPct(f)
	assert.Greater(t, pct, 10.0)
	assert.Less(t, pct, 45.0)

	f.HipCM = 0
	f.WaistCM = 10
	assert.Equal(t, defaultBodyFatFemale, BodyFatPct(f))
}

func TestMacros(t *testing.T) {
	m := MacrosFor(2500, 80)
	assert.Equal(t, 2500, m.Calories)
	assert.Equal(t, 176, m.ProteinG)
	assert.Equal(t, 250, m.CarbsG) // 0.4*2500/4
	assert.Equal(t, 69, m.FatsG)   // round(0.25*2500/9)
}

func TestCalculate(t *testing.T) {
	b, err := Calculate(maleProfile())
	require.NoError(t, err)
	assert.Equal(t, BMINormal, b.BMICategory)
	assert.InDelta(t, 1780*1.55, b.TDEE, 0.001)
	tdee := 1780 * 1.55
	assert.Equal(t, int(tdee+0.5), b.Macros.Calories)

	bad := maleProfile()
	bad.Age = 0
	_, err = Calculate(bad)
	assert.Error(t, err)
}
