package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or save your body profile and nutrition targets",
}

var profileShow = &cobra.Command{
	Use:   "show",
	Short: "Print the cached profile and targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := requireProfile()
		if err != nil {
			return err
		}
		logs.Print("Height:   %.0f cm", profile.HeightCm)
		logs.Print("Weight:   %.0f kg", profile.WeightKg)
		logs.Print("Age:      %d", profile.Age)
		logs.Print("Gender:   %s", profile.Gender)
		logs.Print("Activity: %s", profile.ActivityLevel)
		logs.Print("Goal:     %s", profile.Goal)
		if len(profile.DietaryRestrictions) > 0 {
			logs.Print("Diet:     %s", strings.Join(profile.DietaryRestrictions, ", "))
		}
		if len(profile.AllergensToAvoid) > 0 {
			logs.Print("Avoid:    %s", strings.Join(profile.AllergensToAvoid, ", "))
		}
		if nutrition := current.session.Nutrition(); nutrition != nil {
			logs.Print("")
			logs.Print("BMR %.0f kcal, TDEE %.0f kcal, target %.0f kcal", nutrition.BMR, nutrition.TDEE, nutrition.TargetCalories)
			logs.Print("Protein %.0f g, carbs %.0f g, fat %.0f g", nutrition.ProteinG, nutrition.CarbsG, nutrition.FatG)
		}
		return nil
	},
}

var profileSave = func() *cobra.Command {
	profile := api.Profile{}
	var restrictions, allergens, cuisines string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save your body profile and fetch computed nutrition targets",
		Long: "Save your body profile and fetch computed nutrition targets. The server " +
			"derives BMR, TDEE, and macro targets from the profile; the client only " +
			"caches what comes back.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			profile.DietaryRestrictions = splitCSV(restrictions)
			profile.AllergensToAvoid = splitCSV(allergens)
			profile.CuisinePreferences = splitCSV(cuisines)

			nutrition, err := current.gateway.ComputeNutrition(cmd.Context(), &profile)
			if err != nil {
				return err
			}
			current.session.SetProfile(&profile)
			current.session.SetNutrition(nutrition)

			logs.Print("Profile saved.")
			logs.Print("Daily target: %.0f kcal (%.0f g protein / %.0f g carbs / %.0f g fat)",
				nutrition.TargetCalories, nutrition.ProteinG, nutrition.CarbsG, nutrition.FatG)
			return nil
		},
	}

	// Numeric conversion happens here, at the flag boundary; the profile the
	// gateway sends always carries well-formed numbers.
	cmd.Flags().Float64Var(&profile.HeightCm, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&profile.WeightKg, "weight", 0, "weight in kg")
	cmd.Flags().IntVar(&profile.Age, "age", 0, "age in years")
	cmd.Flags().StringVar(&profile.Gender, "gender", "other", "male, female, or other")
	cmd.Flags().StringVar(&profile.ActivityLevel, "activity", "moderately_active", "sedentary through extremely_active")
	cmd.Flags().StringVar(&profile.Goal, "goal", "maintenance", "weight_loss, bulking, cutting, maintenance, athletic_performance")
	cmd.Flags().StringVar(&restrictions, "restrictions", "", "comma-separated dietary restrictions")
	cmd.Flags().StringVar(&allergens, "allergens", "", "comma-separated allergens to avoid")
	cmd.Flags().StringVar(&cuisines, "cuisines", "", "comma-separated cuisine preferences")
	cmd.Flags().StringVar(&profile.Region, "region", "global", "recipe region")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("weight")
	cmd.MarkFlagRequired("age")

	return cmd
}()

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func init() {
	profileCmd.AddCommand(profileShow, profileSave)
}
