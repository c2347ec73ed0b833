package router

import (
	"fittrack-go-server/controllers/challenge"
	"fittrack-go-server/controllers/check"
	"fittrack-go-server/controllers/feed"
	"fittrack-go-server/controllers/food"
	"fittrack-go-server/controllers/healthData"
	"fittrack-go-server/controllers/readProbe"
	"fittrack-go-server/utils"

	"github.com/gin-gonic/gin"
)

func Router() *gin.Engine {
	route := gin.Default()

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive)

	api := route.Group("/", utils.AuthMiddleware())

	foodGroup := api.Group("/food")
	{
		foodGroup.GET("/items", food.Search)
		foodGroup.GET("/items/:id", food.GetItem)
		foodGroup.GET("/categories", food.Categories)
		foodGroup.POST("/scrape", food.Scrape)
		foodGroup.GET("/basket", food.GetBasket)
		foodGroup.POST("/basket", food.AddBasketItem)
		foodGroup.PUT("/basket/:id", food.UpdateBasketItem)
		foodGroup.DELETE("/basket/:id", food.DeleteBasketItem)
		foodGroup.POST("/basket/create-meal", food.CreateMealFromBasket)
	}

	healthGroup := api.Group("/health")
	{
		healthGroup.GET("/daily/:date", healthData.GetDaily)
		healthGroup.GET("/weekly", healthData.GetWeekly)
		healthGroup.POST("/daily", healthData.UpsertDaily)
		healthGroup.POST("/daily/:date/meal", healthData.AddMeal)
		healthGroup.PUT("/daily/:date/meal/:id", healthData.UpdateMeal)
		healthGroup.DELETE("/daily/:date/meal/:id", healthData.DeleteMeal)
		healthGroup.POST("/daily/:date/workout", healthData.AddWorkout)
		healthGroup.PUT("/daily/:date/workout/:id", healthData.UpdateWorkout)
		healthGroup.DELETE("/daily/:date/workout/:id", healthData.DeleteWorkout)
		healthGroup.POST("/daily/:date/water-entry", healthData.AddWaterEntry)
		healthGroup.POST("/fasting", healthData.SaveFasting)
		healthGroup.POST("/fasting/start", healthData.StartFasting)
		healthGroup.POST("/fasting/:date/end", healthData.EndFasting)
		healthGroup.GET("/recommendations", healthData.Recommendations)
		healthGroup.DELETE("/purge", healthData.PurgeDaily)
	}

	feedGroup := api.Group("/feed")
	{
		feedGroup.GET("", feed.GetFeed)
		feedGroup.POST("", feed.CreatePost)
		feedGroup.GET("/:id", feed.GetPost)
		feedGroup.DELETE("/:id", feed.DeletePost)
		feedGroup.POST("/:id/like", feed.ToggleLike)
		feedGroup.GET("/:id/comments", feed.ListComments)
		feedGroup.POST("/:id/comments", feed.AddComment)
		feedGroup.POST("/friends", feed.AddFriend)
	}

	challengeGroup := api.Group("/challenges")
	{
		challengeGroup.GET("", challenge.List)
		challengeGroup.POST("/:slug/enroll", challenge.Enroll)
		challengeGroup.PUT("/:slug/progress", challenge.UpdateProgress)
	}

	return route
}
