package feed

import (
	"net/http"
	"strconv"

	"fittrack-go-server/database"
	feedService "fittrack-go-server/services/feed"
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

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, structs.NewValidationError("invalid post id"))
		return 0, false
	}
	return uint(id), true
}

func GetFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	svc := feedService.NewFeedService(database.Mysql)
	posts, err := svc.GetFeed(utils.CurrentUserID(c), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, posts)
}

func CreatePost(c *gin.Context) {
	var payload structs.FeedPostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	post, err := svc.CreatePost(utils.CurrentUserID(c), payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, post)
}

func GetPost(c *gin.Context) {
	id, good := postID(c)
	if !good {
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	post, err := svc.GetPost(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, post)
}

func DeletePost(c *gin.Context) {
	id, good := postID(c)
	if !good {
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	if err := svc.DeletePost(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": true})
}

func ToggleLike(c *gin.Context) {
	id, good := postID(c)
	if !good {
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	liked, post, err := svc.ToggleLike(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"liked": liked, "likes_count": post.LikesCount})
}

func ListComments(c *gin.Context) {
	id, good := postID(c)
	if !good {
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	comments, err := svc.ListComments(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, comments)
}

func AddComment(c *gin.Context) {
	id, good := postID(c)
	if !good {
		return
	}
	var payload structs.CommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	comment, err := svc.AddComment(utils.CurrentUserID(c), id, payload)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, comment)
}

func AddFriend(c *gin.Context) {
	var payload struct {
		FriendID uint `json:"friend_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, structs.NewValidationError("invalid body: %s", err.Error()))
		return
	}
	svc := feedService.NewFeedService(database.Mysql)
	if err := svc.AddFriend(utils.CurrentUserID(c), payload.FriendID); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"added": true})
}
