package api

// Wire types mirroring the service's schemas. The client never computes any
// of the derived values here; it only caches and displays them.

// User is the authenticated account record.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name,omitempty"`
	Profile  *Profile `json:"profile,omitempty"`
}

// Profile holds body metrics and preferences. Numeric fields are always
// well-formed numbers by the time they reach this type; conversion happens
// at the input boundary.
type Profile struct {
	HeightCm            float64  `json:"height_cm"`
	WeightKg            float64  `json:"weight_kg"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	ActivityLevel       string   `json:"activity_level"`
	Goal                string   `json:"goal"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AllergensToAvoid    []string `json:"allergens_to_avoid"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	Region              string   `json:"region,omitempty"`
}

// NutritionTargets are server-computed calorie and macro targets.
type NutritionTargets struct {
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	TargetCalories float64 `json:"target_calories"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
}

// Recipe is a single search or lookup result.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Calories     float64  `json:"calories,omitempty"`
	ProteinG     float64  `json:"protein_g,omitempty"`
	CarbsG       float64  `json:"carbs_g,omitempty"`
	FatG         float64  `json:"fat_g,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	TimeMinutes  int      `json:"time_minutes,omitempty"`
	MealTypes    []string `json:"meal_types,omitempty"`
	DietaryTags  []string `json:"dietary_tags,omitempty"`
	Allergens    []string `json:"allergens,omitempty"`
	Score        float64  `json:"score,omitempty"`
}

// Meal is one entry in a day of a generated plan.
type Meal struct {
	MealType    string  `json:"meal_type"`
	RecipeID    string  `json:"recipe_id"`
	RecipeTitle string  `json:"recipe_title"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
}

// DayPlan groups the meals for a single day.
type DayPlan struct {
	DayNumber     int     `json:"day_number"`
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"total_calories"`
}

// MealPlan is a generated multi-day plan.
type MealPlan struct {
	Overview         string            `json:"overview"`
	Days             []DayPlan         `json:"days"`
	NutritionTargets *NutritionTargets `json:"nutrition_targets,omitempty"`
}

// ChatTurn is a single message in the onboarding conversation.
type ChatTurn struct {
	Role        string   `json:"role"`
	Content     string   `json:"content"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ChatReply is the assistant's answer to one sent message.
type ChatReply struct {
	Reply            string   `json:"reply"`
	IsComplete       bool     `json:"is_complete"`
	SuggestedActions []string `json:"suggested_actions,omitempty"`
}

// CalendarStatus describes the user's calendar connection.
type CalendarStatus struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}
