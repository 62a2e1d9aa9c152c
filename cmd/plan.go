package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate or show your meal plan",
}

var planGenerate = func() *cobra.Command {
	var days, mealsPerDay int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh meal plan matched to your targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := requireProfile()
			if err != nil {
				return err
			}
			plan, err := current.gateway.GenerateMealPlan(cmd.Context(), profile, days, mealsPerDay)
			if err != nil {
				return err
			}
			printPlan(plan)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of days (1-14)")
	cmd.Flags().IntVar(&mealsPerDay, "meals", 3, "meals per day (1-4)")
	return cmd
}()

var planLatest = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recently generated plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		plan, err := current.gateway.LatestMealPlan(cmd.Context())
		if err != nil {
			return err
		}
		if plan == nil {
			logs.Print("No plan generated yet. Run \"fitfork plan generate\".")
			return nil
		}
		printPlan(plan)
		return nil
	},
}

func printPlan(plan *api.MealPlan) {
	if plan.Overview != "" {
		logs.Print("%s", plan.Overview)
		logs.Print("")
	}
	for _, day := range plan.Days {
		logs.Print("Day %d (%.0f kcal):", day.DayNumber, day.TotalCalories)
		for _, meal := range day.Meals {
			logs.Print("  %-10s %s (%.0f kcal)", meal.MealType, meal.RecipeTitle, meal.Calories)
		}
	}
	if t := plan.NutritionTargets; t != nil {
		logs.Print("")
		logs.Print("Targets: %.0f kcal, %.0f g protein, %.0f g carbs, %.0f g fat",
			t.TargetCalories, t.ProteinG, t.CarbsG, t.FatG)
	}
}

func init() {
	planCmd.AddCommand(planGenerate, planLatest)
}
