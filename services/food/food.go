package food

import (
	"context"
	"fmt"
	"strings"

	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/services/health"
	"fittrack-go-server/services/trackLog"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

// Fetcher is the external nutrition source consumed on catalog misses.
type Fetcher interface {
	Fetch(ctx context.Context, query string, limit int) ([]models.FoodItem, error)
}

type FoodService struct {
	DB      *gorm.DB
	Fetcher Fetcher
	Health  *health.HealthService
}

func NewFoodService(db *gorm.DB, fetcher Fetcher, healthService *health.HealthService) *FoodService {
	return &FoodService{DB: db, Fetcher: fetcher, Health: healthService}
}

// Search queries the local catalog first. On zero rows with a non-empty text
// query it fetches from the external source, imports what passed the health
// filter and re-runs the local search. The external leg is best-effort: its
// failure is logged and the (empty) local result returned.
func (s *FoodService) Search(ctx context.Context, p structs.FoodSearchParam) ([]models.FoodItem, error) {
	items, err := s.localSearch(p)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 || strings.TrimSpace(p.Search) == "" || s.Fetcher == nil {
		return items, nil
	}

	fetched, err := s.Fetcher.Fetch(ctx, p.Search, p.Limit)
	if err != nil {
		trackLog.Error(fmt.Sprintf("catalog backfill for %q failed: %s", p.Search, err.Error()), true)
		return items, nil
	}
	if len(fetched) > 0 {
		if _, err := s.BulkImport(fetched); err != nil {
			trackLog.Error(fmt.Sprintf("catalog backfill import for %q failed: %s", p.Search, err.Error()), true)
			return items, nil
		}
	}
	return s.localSearch(p)
}

func (s *FoodService) localSearch(p structs.FoodSearchParam) ([]models.FoodItem, error) {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := s.DB.Model(&models.FoodItem{})
	if search := strings.TrimSpace(p.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if p.Category != "" {
		query = query.Where("category = ?", p.Category)
	}

	var items []models.FoodItem
	if err := query.Order("name asc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return items, nil
}

// Scrape is the explicit fetch+import endpoint: provider failures surface to
// the caller, unlike the search backfill.
func (s *FoodService) Scrape(ctx context.Context, query string, limit int) (int, error) {
	if strings.TrimSpace(query) == "" {
		return 0, structs.NewValidationError("query is required")
	}
	if s.Fetcher == nil {
		return 0, structs.NewUnconfiguredError("no external food source configured")
	}
	fetched, err := s.Fetcher.Fetch(ctx, query, limit)
	if err != nil {
		return 0, structs.NewInternalError(err)
	}
	return s.BulkImport(fetched)
}

// BulkImport upserts catalog rows by (name, source): existing rows are
// updated in place, the remainder is bulk-inserted. Returns how many rows
// were written.
func (s *FoodService) BulkImport(items []models.FoodItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var toInsert []interface{}
	written := 0
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		var existing models.FoodItem
		err := s.DB.Where("name = ? AND source = ?", item.Name, item.Source).First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"source_url":   item.SourceURL,
				"description":  item.Description,
				"image_url":    item.ImageURL,
				"calories":     item.Calories,
				"carbs":        item.Carbs,
				"protein":      item.Protein,
				"fat":          item.Fat,
				"serving_size": item.ServingSize,
				"serving_unit": item.ServingUnit,
				"category":     item.Category,
			}
			if err := s.DB.Model(&models.FoodItem{}).Where("id = ?", existing.ID).
				Updates(updates).Error; err != nil {
				return written, structs.NewInternalError(err)
			}
			written++
		case gorm.IsRecordNotFoundError(err):
			row := item
			toInsert = append(toInsert, row)
			written++
		default:
			return written, structs.NewInternalError(err)
		}
	}

	if len(toInsert) > 0 {
		if err := gormbulk.BulkInsert(s.DB, toInsert, 500); err != nil {
			// the in-place updates above already landed
			return written - len(toInsert), structs.NewInternalError(err)
		}
	}

	_ = services.InsertActivityLog(s.DB, "food.bulk_import", map[string]interface{}{
		"items": written,
	})
	return written, nil
}

// Categories lists the distinct non-empty catalog categories.
func (s *FoodService) Categories() ([]string, error) {
	var categories []string
	if err := s.DB.Model(&models.FoodItem{}).
		Where("category <> ''").
		Order("category asc").
		Pluck("DISTINCT category", &categories).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return categories, nil
}

// GetFoodItem returns one catalog row.
func (s *FoodService) GetFoodItem(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.DB.Where("id = ?", id).First(&item).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("food item %d not found", id)
		}
		return nil, structs.NewInternalError(err)
	}
	return &item, nil
}
