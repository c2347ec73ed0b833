package food

import (
	"fmt"
	"strings"

	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

// GetBasket lists the user's pending selections with their food items.
func (s *FoodService) GetBasket(userID uint) ([]models.BasketItem, error) {
	var items []models.BasketItem
	if err := s.DB.Preload("FoodItem").
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return items, nil
}

// AddBasketItem adds a food to the basket. The (user, food) pair is unique;
// re-adding updates quantity and serving size instead of duplicating.
func (s *FoodService) AddBasketItem(userID uint, p structs.BasketItemPayload) (*models.BasketItem, error) {
	if p.Quantity <= 0 {
		return nil, structs.NewValidationError("quantity must be positive")
	}
	if p.ServingSize <= 0 {
		return nil, structs.NewValidationError("serving size must be positive")
	}
	if _, err := s.GetFoodItem(p.FoodItemID); err != nil {
		return nil, err
	}

	var existing models.BasketItem
	err := s.DB.Where("user_id = ? AND food_item_id = ?", userID, p.FoodItemID).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"quantity":     p.Quantity,
			"serving_size": p.ServingSize,
		}
		if err := s.DB.Model(&models.BasketItem{}).Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			return nil, structs.NewInternalError(err)
		}
		return s.findBasketItem(userID, existing.ID)
	case gorm.IsRecordNotFoundError(err):
		item := models.BasketItem{
			UserID:      userID,
			FoodItemID:  p.FoodItemID,
			Quantity:    p.Quantity,
			ServingSize: p.ServingSize,
		}
		if err := s.DB.Create(&item).Error; err != nil {
			if !services.IsDuplicateKeyError(err) {
				return nil, structs.NewInternalError(err)
			}
			// concurrent add of the same food, fold into the winner's row
			if err := s.DB.Model(&models.BasketItem{}).
				Where("user_id = ? AND food_item_id = ?", userID, p.FoodItemID).
				Updates(map[string]interface{}{
					"quantity":     p.Quantity,
					"serving_size": p.ServingSize,
				}).Error; err != nil {
				return nil, structs.NewInternalError(err)
			}
		}
		return s.findBasketItemByFood(userID, p.FoodItemID)
	default:
		return nil, structs.NewInternalError(err)
	}
}

func (s *FoodService) findBasketItem(userID, itemID uint) (*models.BasketItem, error) {
	var item models.BasketItem
	err := s.DB.Preload("FoodItem").
		Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("basket item %d not found", itemID)
		}
		return nil, structs.NewInternalError(err)
	}
	return &item, nil
}

func (s *FoodService) findBasketItemByFood(userID, foodItemID uint) (*models.BasketItem, error) {
	var item models.BasketItem
	err := s.DB.Preload("FoodItem").
		Where("user_id = ? AND food_item_id = ?", userID, foodItemID).First(&item).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("basket item not found")
		}
		return nil, structs.NewInternalError(err)
	}
	return &item, nil
}

func (s *FoodService) UpdateBasketItem(userID, itemID uint, p structs.BasketItemPayload) (*models.BasketItem, error) {
	if p.Quantity <= 0 {
		return nil, structs.NewValidationError("quantity must be positive")
	}
	if p.ServingSize <= 0 {
		return nil, structs.NewValidationError("serving size must be positive")
	}
	item, err := s.findBasketItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"quantity":     p.Quantity,
		"serving_size": p.ServingSize,
	}
	if err := s.DB.Model(&models.BasketItem{}).Where("id = ?", item.ID).
		Updates(updates).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.findBasketItem(userID, itemID)
}

func (s *FoodService) DeleteBasketItem(userID, itemID uint) error {
	item, err := s.findBasketItem(userID, itemID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&models.BasketItem{}, "id = ?", item.ID).Error; err != nil {
		return structs.NewInternalError(err)
	}
	return nil
}

func (s *FoodService) ClearBasket(userID uint) error {
	if err := s.DB.Where("user_id = ?", userID).Delete(&models.BasketItem{}).Error; err != nil {
		return structs.NewInternalError(err)
	}
	return nil
}

// ConvertBasketToMeal folds the basket into a single meal on the given date's
// aggregate and clears the basket. Clearing makes the call non-idempotent on
// purpose: a replay finds an empty basket and fails validation.
func (s *FoodService) ConvertBasketToMeal(userID uint, p structs.CreateMealFromBasketPayload) (*models.DailyHealth, error) {
	items, err := s.GetBasket(userID)
	if err != nil {
		return nil, err
	}
	draft, err := FoldBasket(items)
	if err != nil {
		return nil, err
	}

	daily, err := s.Health.AddMeal(userID, p.Date, structs.MealPayload{
		Type:     p.MealType,
		Name:     draft.Name,
		Calories: draft.Calories,
		Carbs:    draft.Carbs,
		Protein:  draft.Protein,
		Fat:      draft.Fat,
	})
	if err != nil {
		return nil, err
	}

	if err := s.ClearBasket(userID); err != nil {
		return nil, err
	}
	return daily, nil
}

// FoldBasket is the pure conversion: each item contributes its food's
// nutrition scaled by (quantity x chosen serving) / native serving.
func FoldBasket(items []models.BasketItem) (*structs.MealDraft, error) {
	if len(items) == 0 {
		return nil, structs.NewValidationError("basket is empty")
	}

	var calories, carbs, protein, fat float64
	names := make([]string, 0, len(items))
	for _, item := range items {
		native := item.FoodItem.ServingSize
		if native <= 0 {
			native = 100
		}
		factor := float64(item.Quantity) * item.ServingSize / native
		calories += float64(item.FoodItem.Calories) * factor
		carbs += item.FoodItem.Carbs * factor
		protein += item.FoodItem.Protein * factor
		fat += item.FoodItem.Fat * factor
		names = append(names, item.FoodItem.Name)
	}

	name := names[0]
	if len(names) > 1 {
		name = strings.Join(names[:2], ", ")
		if rest := len(names) - 2; rest > 0 {
			name = fmt.Sprintf("%s + %d more", name, rest)
		}
	}

	return &structs.MealDraft{
		Name:     name,
		Calories: services.Round(calories),
		Carbs:    carbs,
		Protein:  protein,
		Fat:      fat,
	}, nil
}
