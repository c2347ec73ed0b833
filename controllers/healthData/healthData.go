package healthData

import (
	"net/http"
	"strconv"

	"fittrack-go-server/database"
	"fittrack-go-server/services/health"
	"fittrack-go-server/services/recommend"
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

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		fail(c, structs.NewValidationError("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

func GetDaily(c *gin.Context) {
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.GetDaily(utils.CurrentUserID(c), c.Param("date"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func GetWeekly(c *gin.Context) {
	startDate := c.Query("startDate")
	if startDate == "" {
		fail(c, structs.NewValidationError("startDate is required"))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	days, err := svc.GetWeekly(utils.CurrentUserID(c), startDate)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, days)
}

func UpsertDaily(c *gin.Context) {
	var payload structs.DailyTotalsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.UpsertDailyTotals(utils.CurrentUserID(c), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func AddMeal(c *gin.Context) {
	var payload structs.MealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.AddMeal(utils.CurrentUserID(c), c.Param("date"), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func UpdateMeal(c *gin.Context) {
	id, good := pathID(c, "id")
	if !good {
		return
	}
	var payload structs.MealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.UpdateMeal(utils.CurrentUserID(c), c.Param("date"), id, payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func DeleteMeal(c *gin.Context) {
	id, good := pathID(c, "id")
	if !good {
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.DeleteMeal(utils.CurrentUserID(c), c.Param("date"), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func AddWorkout(c *gin.Context) {
	var payload structs.WorkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.AddWorkout(utils.CurrentUserID(c), c.Param("date"), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func UpdateWorkout(c *gin.Context) {
	id, good := pathID(c, "id")
	if !good {
		return
	}
	var payload structs.WorkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.UpdateWorkout(utils.CurrentUserID(c), c.Param("date"), id, payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func DeleteWorkout(c *gin.Context) {
	id, good := pathID(c, "id")
	if !good {
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.DeleteWorkout(utils.CurrentUserID(c), c.Param("date"), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func AddWaterEntry(c *gin.Context) {
	var payload structs.WaterEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	daily, err := svc.AddWaterEntry(utils.CurrentUserID(c), c.Param("date"), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, daily)
}

func StartFasting(c *gin.Context) {
	var payload structs.FastingStartPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	session, err := svc.StartFasting(utils.CurrentUserID(c), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, session)
}

func EndFasting(c *gin.Context) {
	svc := health.NewHealthService(database.Mysql)
	session, err := svc.EndFasting(utils.CurrentUserID(c), c.Param("date"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, session)
}

func SaveFasting(c *gin.Context) {
	var body struct {
		Date    string                        `json:"date"`
		Session structs.FastingSessionPayload `json:"session"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	if body.Date == "" {
		fail(c, structs.NewValidationError("date is required"))
		return
	}
	svc := health.NewHealthService(database.Mysql)
	session, err := svc.SaveFastingSession(utils.CurrentUserID(c), body.Date, body.Session)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, session)
}

func Recommendations(c *gin.Context) {
	var param structs.RecommendParam
	if err := c.ShouldBindQuery(&param); err != nil {
		fail(c, structs.NewValidationError("invalid query: %s", err.Error()))
		return
	}
	svc := recommend.NewRecommendService(database.Mysql)
	result, err := svc.Recommend(utils.CurrentUserID(c), param)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, result)
}

func PurgeDaily(c *gin.Context) {
	svc := health.NewHealthService(database.Mysql)
	if err := svc.PurgeDaily(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"purged": true})
}
