package models

import "time"

// FoodItem is a shared catalog row, deduplicated by (name, source) on import.
type FoodItem struct {
	ID          uint       `gorm:"column:id;primary_key" json:"id"`
	Name        string     `gorm:"column:name;unique_index:idx_food_name_source" json:"name"`
	Source      string     `gorm:"column:source;unique_index:idx_food_name_source" json:"source"`
	SourceURL   string     `gorm:"column:source_url" json:"source_url"`
	Description string     `gorm:"column:description" json:"description"`
	ImageURL    string     `gorm:"column:image_url" json:"image_url"`
	Calories    int        `gorm:"column:calories" json:"calories"`
	Carbs       float64    `gorm:"column:carbs" json:"carbs"`
	Protein     float64    `gorm:"column:protein" json:"protein"`
	Fat         float64    `gorm:"column:fat" json:"fat"`
	ServingSize float64    `gorm:"column:serving_size" json:"serving_size"`
	ServingUnit string     `gorm:"column:serving_unit" json:"serving_unit"`
	Category    string     `gorm:"column:category" json:"category"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (f *FoodItem) TableName() string {
	return "food_items"
}
