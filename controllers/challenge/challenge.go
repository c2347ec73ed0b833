package challenge

import (
	"net/http"

	"fittrack-go-server/database"
	challengeService "fittrack-go-server/services/challenge"
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

func List(c *gin.Context) {
	svc := challengeService.NewChallengeService(database.Mysql)
	views, err := svc.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, views)
}

func Enroll(c *gin.Context) {
	svc := challengeService.NewChallengeService(database.Mysql)
	enrollment, err := svc.Enroll(utils.CurrentUserID(c), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, enrollment)
}

func UpdateProgress(c *gin.Context) {
	var payload structs.ChallengeProgressPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := challengeService.NewChallengeService(database.Mysql)
	enrollment, err := svc.UpdateProgress(utils.CurrentUserID(c), c.Param("slug"), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, enrollment)
}
