package food

import (
	"net/http"
	"strconv"

	"fittrack-go-server/database"
	"fittrack-go-server/enums"
	foodService "fittrack-go-server/services/food"
	"fittrack-go-server/services/health"
	"fittrack-go-server/services/rabbitmq"
	"fittrack-go-server/services/scraper"
	"fittrack-go-server/services/trackLog"
	"fittrack-go-server/structs"
	"fittrack-go-server/utils"

	"github.com/gin-gonic/gin"
)

func fail(c *gin.Context, err error) {
	em := structs.AsErrorModel(err)
	c.JSON(em.HTTPStatus(), gin.H{"success": false, "message": em.Message, "code": em.Code})
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func newService() *foodService.FoodService {
	db := database.Mysql
	return foodService.NewFoodService(db, scraper.NewClientFromEnv(), health.NewHealthService(db))
}

func Search(c *gin.Context) {
	var param structs.FoodSearchParam
	if err := c.ShouldBindQuery(&param); err != nil {
		fail(c, structs.NewValidationError("invalid query: %s", err.Error()))
		return
	}
	items, err := newService().Search(c.Request.Context(), param)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func Categories(c *gin.Context) {
	categories, err := newService().Categories()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, categories)
}

func GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, structs.NewValidationError("invalid id"))
		return
	}
	item, serr := newService().GetFoodItem(uint(id))
	if serr != nil {
		fail(c, serr)
		return
	}
	ok(c, item)
}

// Scrape forces an external fetch + import. With async=true the job goes onto
// the food-scrape queue instead of running inline.
func Scrape(c *gin.Context) {
	var payload structs.ScrapePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	if payload.Query == "" {
		fail(c, structs.NewValidationError("query is required"))
		return
	}

	if payload.Async {
		conn := rabbitmq.GetConnection("fittrack")
		if conn == nil {
			fail(c, structs.NewUnconfiguredError("queue not available"))
			return
		}
		param := structs.ScrapeQueueParam{
			Query:     payload.Query,
			Limit:     payload.Limit,
			QueueType: enums.QueueFoodScrape,
		}
		if err := conn.Publish(enums.QueueFoodScrape, param); err != nil {
			trackLog.Error("enqueue scrape job failed: "+err.Error(), true)
			fail(c, structs.NewInternalError(err))
			return
		}
		ok(c, gin.H{"queued": true})
		return
	}

	imported, err := newService().Scrape(c.Request.Context(), payload.Query, payload.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"imported": imported})
}

func GetBasket(c *gin.Context) {
	items, err := newService().GetBasket(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

func AddBasketItem(c *gin.Context) {
	var payload structs.BasketItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	item, err := newService().AddBasketItem(utils.CurrentUserID(c), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, item)
}

func UpdateBasketItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, structs.NewValidationError("invalid id"))
		return
	}
	var payload structs.BasketItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	item, serr := newService().UpdateBasketItem(utils.CurrentUserID(c), uint(id), payload)
	if serr != nil {
		fail(c, serr)
		return
	}
	ok(c, item)
}

func DeleteBasketItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, structs.NewValidationError("invalid id"))
		return
	}
	if serr := newService().DeleteBasketItem(utils.CurrentUserID(c), uint(id)); serr != nil {
		fail(c, serr)
		return
	}
	ok(c, gin.H{"deleted": true})
}

func CreateMealFromBasket(c *gin.Context) {
	var payload structs.CreateMealFromBasketPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	if payload.MealType == "" || payload.Date == "" {
		fail(c, structs.NewValidationError("meal_type and date are required"))
		return
	}
	daily, err := newService().ConvertBasketToMeal(utils.CurrentUserID(c), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}
