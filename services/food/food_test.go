package food

import (
	"context"
	"errors"
	"testing"

	"fittrack-go-server/database"
	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/services/health"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestService(db *gorm.DB, fetcher Fetcher) *FoodService {
	return NewFoodService(db, fetcher, health.NewHealthService(db))
}

// stubFetcher records calls and returns a canned result.
type stubFetcher struct {
	items []models.FoodItem
	err   error
	calls int
}

func (f *stubFetcher) Fetch(ctx context.Context, query string, limit int) ([]models.FoodItem, error) {
	f.calls++
	return f.items, f.err
}

func seedFood(t *testing.T, db *gorm.DB, items ...models.FoodItem) []models.FoodItem {
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return items
}

func TestSearchLocalHit(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	fetcher := &stubFetcher{}
	svc := newTestService(db, fetcher)

	seedFood(t, db, models.FoodItem{Name: "Banana", Source: enums.SourceManual, Calories: 89, Category: "fruits"})

	items, err := svc.Search(context.Background(), structs.FoodSearchParam{Search: "banana"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, fetcher.calls)
}

func TestSearchBackfillsOnMiss(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	fetcher := &stubFetcher{items: []models.FoodItem{
		{Name: "Dragon Fruit", Source: enums.SourceScraper, Calories: 60, ServingSize: 100, ServingUnit: "g", Category: "fruits"},
	}}
	svc := newTestService(db, fetcher)

	items, err := svc.Search(context.Background(), structs.FoodSearchParam{Search: "dragon"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "Dragon Fruit", items[0].Name)

	// the import persisted, the second search stays local
	items, err = svc.Search(context.Background(), structs.FoodSearchParam{Search: "dragon"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, fetcher.calls)
}

func TestSearchSwallowsFetcherFailure(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	fetcher := &stubFetcher{err: errors.New("provider down")}
	svc := newTestService(db, fetcher)

	items, err := svc.Search(context.Background(), structs.FoodSearchParam{Search: "anything"})
	require.NoError(t, err)
	assert.Len(t, items, 0)
	assert.Equal(t, 1, fetcher.calls)
}

func TestSearchEmptyQuerySkipsBackfill(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	fetcher := &stubFetcher{}
	svc := newTestService(db, fetcher)

	items, err := svc.Search(context.Background(), structs.FoodSearchParam{Category: "fruits"})
	require.NoError(t, err)
	assert.Len(t, items, 0)
	assert.Equal(t, 0, fetcher.calls)
}

func TestScrapeErrors(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	svc := newTestService(db, nil)
	_, err := svc.Scrape(context.Background(), "", 10)
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)

	_, err = svc.Scrape(context.Background(), "banana", 10)
	assert.Equal(t, enums.CodeUnconfigured, structs.AsErrorModel(err).Code)

	svc = newTestService(db, &stubFetcher{err: errors.New("provider down")})
	_, err = svc.Scrape(context.Background(), "banana", 10)
	assert.Equal(t, enums.CodeInternal, structs.AsErrorModel(err).Code)
}

func TestBulkImportUpsertsByNameAndSource(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := newTestService(db, nil)

	written, err := svc.BulkImport([]models.FoodItem{
		{Name: "Banana", Source: enums.SourceScraper, Calories: 89, Category: "fruits"},
		{Name: "Oats", Source: enums.SourceScraper, Calories: 389, Category: "grains"},
		{Name: "", Source: enums.SourceScraper},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	// same names again: updated in place, no duplicates
	written, err = svc.BulkImport([]models.FoodItem{
		{Name: "Banana", Source: enums.SourceScraper, Calories: 95, Category: "fruits"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	var count int
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&count).Error)
	assert.Equal(t, 2, count)

	var banana models.FoodItem
	require.NoError(t, db.Where("name = ?", "Banana").First(&banana).Error)
	assert.Equal(t, 95, banana.Calories)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"fruits", "grains"}, categories)
}

func TestBulkImportInsertFailureReportsUpdates(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := newTestService(db, nil)

	seedFood(t, db, models.FoodItem{Name: "Banana", Source: enums.SourceScraper, Calories: 89})

	// the two identical new rows collide inside the bulk insert; the in-place
	// update of Banana still counts
	written, err := svc.BulkImport([]models.FoodItem{
		{Name: "Banana", Source: enums.SourceScraper, Calories: 95},
		{Name: "Oats", Source: enums.SourceScraper, Calories: 389},
		{Name: "Oats", Source: enums.SourceScraper, Calories: 390},
	})
	require.Error(t, err)
	assert.Equal(t, 1, written)

	var banana models.FoodItem
	require.NoError(t, db.Where("name = ?", "Banana").First(&banana).Error)
	assert.Equal(t, 95, banana.Calories)
}

func TestBasketAddAndFold(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := newTestService(db, nil)

	foods := seedFood(t, db,
		models.FoodItem{Name: "Chicken Breast", Source: enums.SourceManual, Calories: 165, Protein: 31, ServingSize: 100, ServingUnit: "g"},
		models.FoodItem{Name: "Rice", Source: enums.SourceManual, Calories: 130, Carbs: 28, ServingSize: 100, ServingUnit: "g"},
	)

	_, err := svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: foods[0].ID, Quantity: 1, ServingSize: 150})
	require.NoError(t, err)
	_, err = svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: foods[1].ID, Quantity: 2, ServingSize: 100})
	require.NoError(t, err)

	// re-adding the same food folds into the existing row
	item, err := svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: foods[0].ID, Quantity: 1, ServingSize: 100})
	require.NoError(t, err)
	assert.Equal(t, float64(100), item.ServingSize)

	items, err := svc.GetBasket(1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	draft, err := FoldBasket(items)
	require.NoError(t, err)
	// 165 * (1*100/100) + 130 * (2*100/100) = 425
	assert.Equal(t, 425, draft.Calories)
	assert.Equal(t, "Chicken Breast, Rice", draft.Name)
}

func TestFoldBasketScalesAndNames(t *testing.T) {
	food := func(name string, calories int) models.FoodItem {
		return models.FoodItem{Name: name, Calories: calories, ServingSize: 100}
	}

	// 89 * (1*150/100) + 60 * (3*50/100) = 133.5 + 90 = 223.5 -> 224
	draft, err := FoldBasket([]models.BasketItem{
		{Quantity: 1, ServingSize: 150, FoodItem: food("Banana", 89)},
		{Quantity: 3, ServingSize: 50, FoodItem: food("Yogurt", 60)},
		{Quantity: 1, ServingSize: 100, FoodItem: food("Granola", 0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 224, draft.Calories)
	assert.Equal(t, "Banana, Yogurt + 1 more", draft.Name)

	// missing native serving falls back to 100
	draft, err = FoldBasket([]models.BasketItem{
		{Quantity: 2, ServingSize: 50, FoodItem: models.FoodItem{Name: "Mystery", Calories: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, draft.Calories)
	assert.Equal(t, "Mystery", draft.Name)

	_, err = FoldBasket(nil)
	require.Error(t, err)
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)
}

func TestConvertBasketToMealClearsBasket(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := newTestService(db, nil)

	foods := seedFood(t, db,
		models.FoodItem{Name: "Chicken Breast", Source: enums.SourceManual, Calories: 165, ServingSize: 100},
	)
	_, err := svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: foods[0].ID, Quantity: 1, ServingSize: 100})
	require.NoError(t, err)

	daily, err := svc.ConvertBasketToMeal(1, structs.CreateMealFromBasketPayload{
		MealType: enums.MealLunch, Date: "2026-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, 165, daily.CaloriesConsumed)
	require.Len(t, daily.Meals, 1)
	assert.Equal(t, "Chicken Breast", daily.Meals[0].Name)

	items, err := svc.GetBasket(1)
	require.NoError(t, err)
	assert.Len(t, items, 0)

	// replay fails: the basket is gone
	_, err = svc.ConvertBasketToMeal(1, structs.CreateMealFromBasketPayload{
		MealType: enums.MealLunch, Date: "2026-03-20",
	})
	require.Error(t, err)
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)
}

func TestBasketValidationAndOwnership(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := newTestService(db, nil)

	foods := seedFood(t, db, models.FoodItem{Name: "Rice", Source: enums.SourceManual, Calories: 130, ServingSize: 100})

	_, err := svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: foods[0].ID, Quantity: 0, ServingSize: 100})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)

	_, err = svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: 999, Quantity: 1, ServingSize: 100})
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)

	item, err := svc.AddBasketItem(1, structs.BasketItemPayload{FoodItemID: foods[0].ID, Quantity: 1, ServingSize: 100})
	require.NoError(t, err)

	// another user cannot touch it
	_, err = svc.UpdateBasketItem(2, item.ID, structs.BasketItemPayload{FoodItemID: foods[0].ID, Quantity: 2, ServingSize: 100})
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)
	err = svc.DeleteBasketItem(2, item.ID)
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)

	require.NoError(t, svc.DeleteBasketItem(1, item.ID))
}
