package structs

// FoodSearchParam carries the query string filters of GET /food/items.
type FoodSearchParam struct {
	Search   string `json:"search" form:"search"`
	Category string `json:"category" form:"category"`
	Page     int    `json:"page" form:"page"`
	Limit    int    `json:"limit" form:"limit"`
}

type ScrapePayload struct {
	Query string `json:"query" form:"query"`
	Limit int    `json:"limit" form:"limit"`
	Async bool   `json:"async" form:"async"`
}

type BasketItemPayload struct {
	FoodItemID  uint    `json:"food_item_id" form:"food_item_id"`
	Quantity    int     `json:"quantity" form:"quantity"`
	ServingSize float64 `json:"serving_size" form:"serving_size"`
}

type CreateMealFromBasketPayload struct {
	MealType string `json:"meal_type" form:"meal_type"`
	Date     string `json:"date" form:"date"`
}

// MealDraft is the folded summary of a basket, before it is written as a Meal.
type MealDraft struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}
