package structs

import "time"

// DailyTotalsPayload is the body of POST /health/daily.
type DailyTotalsPayload struct {
	Date             string `json:"date" form:"date"`
	CaloriesConsumed *int   `json:"calories_consumed" form:"calories_consumed"`
	CaloriesBurned   *int   `json:"calories_burned" form:"calories_burned"`
	Steps            *int   `json:"steps" form:"steps"`
	WaterIntake      *int   `json:"water_intake" form:"water_intake"`
	WaterGoal        *int   `json:"water_goal" form:"water_goal"`
}

type MealPayload struct {
	Type      string     `json:"type" form:"type"`
	Name      string     `json:"name" form:"name"`
	Calories  int        `json:"calories" form:"calories"`
	Carbs     float64    `json:"carbs" form:"carbs"`
	Protein   float64    `json:"protein" form:"protein"`
	Fat       float64    `json:"fat" form:"fat"`
	Timestamp *time.Time `json:"timestamp" form:"timestamp"`
}

type ExercisePayload struct {
	Name     string  `json:"name" form:"name"`
	Sets     int     `json:"sets" form:"sets"`
	Reps     int     `json:"reps" form:"reps"`
	Weight   float64 `json:"weight" form:"weight"`
	Calories int     `json:"calories" form:"calories"`
}

type LocationPointPayload struct {
	Latitude  float64   `json:"latitude" form:"latitude"`
	Longitude float64   `json:"longitude" form:"longitude"`
	Altitude  float64   `json:"altitude" form:"altitude"`
	Timestamp time.Time `json:"timestamp" form:"timestamp"`
}

type WorkoutPayload struct {
	Name                string                 `json:"name" form:"name"`
	Type                string                 `json:"type" form:"type"`
	TotalCaloriesBurned int                    `json:"total_calories_burned" form:"total_calories_burned"`
	Distance            float64                `json:"distance" form:"distance"`
	AvgSpeed            float64                `json:"avg_speed" form:"avg_speed"`
	MaxSpeed            float64                `json:"max_speed" form:"max_speed"`
	Duration            int                    `json:"duration" form:"duration"`
	Exercises           []ExercisePayload      `json:"exercises" form:"exercises"`
	LocationPoints      []LocationPointPayload `json:"location_points" form:"location_points"`
}

type WaterEntryPayload struct {
	Glasses   int        `json:"glasses" form:"glasses"`
	Timestamp *time.Time `json:"timestamp" form:"timestamp"`
}

// FastingSessionPayload is the upsert body of POST /health/fasting.
type FastingSessionPayload struct {
	Type              string     `json:"type" form:"type"`
	StartTime         *time.Time `json:"start_time" form:"start_time"`
	EndTime           *time.Time `json:"end_time" form:"end_time"`
	TargetDuration    *int       `json:"target_duration" form:"target_duration"`
	EatingWindowStart *time.Time `json:"eating_window_start" form:"eating_window_start"`
	EatingWindowEnd   *time.Time `json:"eating_window_end" form:"eating_window_end"`
}

// FastingStartPayload is the body of POST /health/fasting/start.
type FastingStartPayload struct {
	Date              string     `json:"date" form:"date"`
	Type              string     `json:"type" form:"type"`
	TargetDuration    *int       `json:"target_duration" form:"target_duration"`
	EatingWindowStart *time.Time `json:"eating_window_start" form:"eating_window_start"`
	EatingWindowEnd   *time.Time `json:"eating_window_end" form:"eating_window_end"`
}
