package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

var searchCmd = func() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find recipes ranked against your profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := requireProfile()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results, err := current.gateway.SearchRecipes(cmd.Context(), query, profile, topK)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				logs.Print("No recipes matched \"%s\".", query)
				return nil
			}
			for _, r := range results {
				logs.Print("%s  %s (%.0f kcal, %.0f g protein)", r.ID, r.Title, r.Calories, r.ProteinG)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&topK, "top", 6, "number of results")
	return cmd
}()

var recipeCmd = &cobra.Command{
	Use:   "recipe <id>",
	Short: "Show a single recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		r, err := current.gateway.GetRecipe(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		logs.Print("%s", r.Title)
		if r.Description != "" {
			logs.Print("%s", r.Description)
		}
		logs.Print("%.0f kcal  |  %.0f g protein  |  %.0f g carbs  |  %.0f g fat", r.Calories, r.ProteinG, r.CarbsG, r.FatG)
		if len(r.Ingredients) > 0 {
			logs.Print("")
			logs.Print("Ingredients:")
			for _, ing := range r.Ingredients {
				logs.Print("  - %s", ing)
			}
		}
		for i, step := range r.Instructions {
			if i == 0 {
				logs.Print("")
				logs.Print("Instructions:")
			}
			logs.Print("  %d. %s", i+1, step)
		}
		return nil
	},
}
