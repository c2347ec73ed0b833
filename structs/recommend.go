package structs

// RecommendParam carries the query of GET /health/recommendations.
type RecommendParam struct {
	MealType     string `json:"meal_type" form:"mealType"`
	CalorieLimit int    `json:"calorie_limit" form:"calorieLimit"`
	Preferences  string `json:"preferences" form:"preferences"`
}

// MealSuggestion is one AI-generated meal idea.
type MealSuggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    int     `json:"calories"`
	Carbs       float64 `json:"carbs"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
}

// RecommendResult bundles the suggestions with the energy context they were
// generated against.
type RecommendResult struct {
	BMR         int              `json:"bmr"`
	TDEE        int              `json:"tdee"`
	Suggestions []MealSuggestion `json:"suggestions"`
}
