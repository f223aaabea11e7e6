package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/health"
	"arise/internal/storage"
	"arise/internal/ui"
)

func newBioCmd() *cobra.Command {
	var (
		age      int
		gender   string
		heightCM float64
		weightKG float64
		neckCM   float64
		waistCM  float64
		hipCM    float64
		activity string
	)

	cmd := &cobra.Command{
		Use:   "bio",
		Short: "Calculate and store biometrics (BMI, BMR, TDEE, body fat, macros)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile := health.Profile{
				Age:      age,
				Gender:   health.Gender(gender),
				HeightCM: heightCM,
				WeightKG: weightKG,
				NeckCM:   neckCM,
				WaistCM:  waistCM,
				HipCM:    hipCM,
				Activity: health.ActivityLevel(activity),
			}
			if profile.Age == 0 {
				// No flags given: report the stored profile instead.
				snap, err := s.HealthRepo().Load(ctx)
				if err != nil {
					return err
				}
				if snap == nil {
					return fmt.Errorf("no health profile stored; pass --age, --height, --weight")
				}
				printBiometrics(cmd, snap.Biometrics)
				return nil
			}

			bio, err := health.Calculate(profile)
			if err != nil {
				return err
			}

			snap, err := s.HealthRepo().Load(ctx)
			if err != nil {
				return err
			}
			if snap == nil {
				snap = &storage.HealthSnapshot{}
			}
			snap.Profile = profile
			snap.Biometrics = bio
			if err := s.HealthRepo().Save(ctx, *snap); err != nil {
				return err
			}

			printBiometrics(cmd, bio)
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&gender, "gender", "male", "Gender (male|female)")
	cmd.Flags().Float64Var(&heightCM, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&weightKG, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&neckCM, "neck", 0, "Neck circumference in cm")
	cmd.Flags().Float64Var(&waistCM, "waist", 0, "Waist circumference in cm")
	cmd.Flags().Float64Var(&hipCM, "hip", 0, "Hip circumference in cm")
	cmd.Flags().StringVar(&activity, "activity", "moderate", "Activity level (sedentary|light|moderate|very_active)")

	return cmd
}

func printBiometrics(cmd *cobra.Command, b health.Biometrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Biometrics"))
	fmt.Fprintln(out, ui.LabelValue("BMI", fmt.Sprintf("%.1f (%s)", b.BMI, b.BMICategory)))
	fmt.Fprintln(out, ui.LabelValue("BMR", fmt.Sprintf("%.0f kcal", b.BMR)))
	fmt.Fprintln(out, ui.LabelValue("TDEE", fmt.Sprintf("%.0f kcal", b.TDEE)))
	fmt.Fprintln(out, ui.LabelValue("Body fat", fmt.Sprintf("%.1f%%", b.BodyFatPct)))
	fmt.Fprintln(out, ui.LabelValue("Macros", fmt.Sprintf("%d kcal — %dg protein, %dg carbs, %dg fat",
		b.Macros.Calories, b.Macros.ProteinG, b.Macros.CarbsG, b.Macros.FatsG)))
}
