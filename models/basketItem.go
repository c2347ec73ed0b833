package models

import "time"

// BasketItem is a user's pending food selection. Unique per (user, food item);
// adding the same food again updates quantity/serving instead of duplicating.
type BasketItem struct {
	ID          uint       `gorm:"column:id;primary_key" json:"id"`
	UserID      uint       `gorm:"column:user_id;unique_index:idx_basket_user_food" json:"user_id"`
	FoodItemID  uint       `gorm:"column:food_item_id;unique_index:idx_basket_user_food" json:"food_item_id"`
	FoodItem    FoodItem   `gorm:"foreignkey:FoodItemID" json:"food_item"`
	Quantity    int        `gorm:"column:quantity" json:"quantity"`
	ServingSize float64    `gorm:"column:serving_size" json:"serving_size"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (b *BasketItem) TableName() string {
	return "basket_items"
}
