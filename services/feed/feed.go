package feed

import (
	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

// FeedService handles the social feed. Visibility: a post is readable by its
// owner, by everyone when public, and by accepted friends when friends-only.
// An inaccessible post reads as not found, it never leaks its existence.
type FeedService struct {
	DB *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{DB: db}
}

func validVisibility(v string) bool {
	return v == enums.VisibilityPublic || v == enums.VisibilityFriends || v == enums.VisibilityPrivate
}

func (s *FeedService) CreatePost(userID uint, p structs.FeedPostPayload) (*models.FeedPost, error) {
	if p.Content == "" {
		return nil, structs.NewValidationError("content is required")
	}
	visibility := p.Visibility
	if visibility == "" {
		visibility = enums.VisibilityPublic
	}
	if !validVisibility(visibility) {
		return nil, structs.NewValidationError("invalid visibility %q", p.Visibility)
	}

	post := models.FeedPost{
		UserID:     userID,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		Visibility: visibility,
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return &post, nil
}

// friendIDs returns users with an accepted friendship in either direction.
func (s *FeedService) friendIDs(userID uint) ([]uint, error) {
	var rows []models.Friendship
	if err := s.DB.Where("(user_id = ? OR friend_id = ?) AND status = ?",
		userID, userID, enums.FriendAccepted).Find(&rows).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if row.UserID == userID {
			ids = append(ids, row.FriendID)
		} else {
			ids = append(ids, row.UserID)
		}
	}
	return ids, nil
}

func (s *FeedService) GetFeed(userID uint, page, limit int) ([]models.FeedPost, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	friends, err := s.friendIDs(userID)
	if err != nil {
		return nil, err
	}

	query := s.DB.Model(&models.FeedPost{})
	if len(friends) > 0 {
		query = query.Where("user_id = ? OR visibility = ? OR (visibility = ? AND user_id IN (?))",
			userID, enums.VisibilityPublic, enums.VisibilityFriends, friends)
	} else {
		query = query.Where("user_id = ? OR visibility = ?", userID, enums.VisibilityPublic)
	}

	var posts []models.FeedPost
	if err := query.Order("created_at desc, id desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return posts, nil
}

// GetPost returns the post when the caller may see it, not found otherwise.
func (s *FeedService) GetPost(userID, postID uint) (*models.FeedPost, error) {
	var post models.FeedPost
	if err := s.DB.Where("id = ?", postID).First(&post).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("post %d not found", postID)
		}
		return nil, structs.NewInternalError(err)
	}

	if post.UserID == userID || post.Visibility == enums.VisibilityPublic {
		return &post, nil
	}
	if post.Visibility == enums.VisibilityFriends {
		friends, err := s.friendIDs(userID)
		if err != nil {
			return nil, err
		}
		for _, id := range friends {
			if id == post.UserID {
				return &post, nil
			}
		}
	}
	return nil, structs.NewNotFoundError("post %d not found", postID)
}

func (s *FeedService) DeletePost(userID, postID uint) error {
	var post models.FeedPost
	if err := s.DB.Where("id = ? AND user_id = ?", postID, userID).First(&post).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return structs.NewNotFoundError("post %d not found", postID)
		}
		return structs.NewInternalError(err)
	}
	tx := s.DB.Begin()
	if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error; err != nil {
		tx.Rollback()
		return structs.NewInternalError(err)
	}
	if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostComment{}).Error; err != nil {
		tx.Rollback()
		return structs.NewInternalError(err)
	}
	if err := tx.Delete(&models.FeedPost{}, "id = ?", post.ID).Error; err != nil {
		tx.Rollback()
		return structs.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return structs.NewInternalError(err)
	}
	return nil
}

// ToggleLike flips the caller's like on the post. The like row and the
// counter move in one transaction so the pair is never observed half-applied;
// the counter is floored at zero.
func (s *FeedService) ToggleLike(userID, postID uint) (bool, *models.FeedPost, error) {
	post, err := s.GetPost(userID, postID)
	if err != nil {
		return false, nil, err
	}

	tx := s.DB.Begin()
	var like models.PostLike
	err = tx.Where("post_id = ? AND user_id = ?", post.ID, userID).First(&like).Error
	liked := false
	switch {
	case err == nil:
		if err := tx.Delete(&models.PostLike{}, "id = ?", like.ID).Error; err != nil {
			tx.Rollback()
			return false, nil, structs.NewInternalError(err)
		}
		next := post.LikesCount - 1
		if next < 0 {
			next = 0
		}
		if err := tx.Model(&models.FeedPost{}).Where("id = ?", post.ID).
			Update("likes_count", next).Error; err != nil {
			tx.Rollback()
			return false, nil, structs.NewInternalError(err)
		}
	case gorm.IsRecordNotFoundError(err):
		newLike := models.PostLike{PostID: post.ID, UserID: userID}
		if err := tx.Create(&newLike).Error; err != nil {
			tx.Rollback()
			if services.IsDuplicateKeyError(err) {
				// concurrent like already landed, nothing to add
				return true, post, nil
			}
			return false, nil, structs.NewInternalError(err)
		}
		if err := tx.Model(&models.FeedPost{}).Where("id = ?", post.ID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
			tx.Rollback()
			return false, nil, structs.NewInternalError(err)
		}
		liked = true
	default:
		tx.Rollback()
		return false, nil, structs.NewInternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return false, nil, structs.NewInternalError(err)
	}

	refreshed, err := s.GetPost(userID, postID)
	if err != nil {
		return false, nil, err
	}
	return liked, refreshed, nil
}

func (s *FeedService) AddComment(userID, postID uint, p structs.CommentPayload) (*models.PostComment, error) {
	if p.Content == "" {
		return nil, structs.NewValidationError("content is required")
	}
	post, err := s.GetPost(userID, postID)
	if err != nil {
		return nil, err
	}

	tx := s.DB.Begin()
	comment := models.PostComment{PostID: post.ID, UserID: userID, Content: p.Content}
	if err := tx.Create(&comment).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Model(&models.FeedPost{}).Where("id = ?", post.ID).
		Update("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return &comment, nil
}

func (s *FeedService) ListComments(userID, postID uint) ([]models.PostComment, error) {
	post, err := s.GetPost(userID, postID)
	if err != nil {
		return nil, err
	}
	var comments []models.PostComment
	if err := s.DB.Where("post_id = ?", post.ID).
		Order("created_at asc, id asc").Find(&comments).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return comments, nil
}

// AddFriend records an accepted friendship; re-adding is a no-op.
func (s *FeedService) AddFriend(userID, friendID uint) error {
	if userID == friendID {
		return structs.NewValidationError("cannot befriend yourself")
	}
	row := models.Friendship{UserID: userID, FriendID: friendID, Status: enums.FriendAccepted}
	if err := s.DB.Create(&row).Error; err != nil {
		if services.IsDuplicateKeyError(err) {
			return nil
		}
		return structs.NewInternalError(err)
	}
	return nil
}
