package challenge

import (
	"time"

	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

// ChallengeService exposes the fixed challenge catalog plus per-user
// enrollment and score keeping.
type ChallengeService struct {
	DB *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{DB: db}
}

// defaultChallenges is the fixed catalog seeded at startup.
var defaultChallenges = []models.Challenge{
	{Slug: "10k-steps-week", Title: "10k Steps a Day", Description: "Hit 10,000 steps every day for a week", Metric: "steps", Goal: 70000},
	{Slug: "hydration-streak", Title: "Hydration Streak", Description: "Drink your water goal 14 days in a row", Metric: "glasses", Goal: 112},
	{Slug: "workout-warrior", Title: "Workout Warrior", Description: "Log 12 workouts this month", Metric: "workouts", Goal: 12},
	{Slug: "fasting-five", Title: "Fasting Five", Description: "Complete five fasting sessions", Metric: "sessions", Goal: 5},
}

// SeedDefaults inserts any catalog entries that are missing, keyed by slug.
func (s *ChallengeService) SeedDefaults() error {
	for _, c := range defaultChallenges {
		var existing models.Challenge
		err := s.DB.Where("slug = ?", c.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !gorm.IsRecordNotFoundError(err) {
			return structs.NewInternalError(err)
		}
		row := c
		if err := s.DB.Create(&row).Error; err != nil && !services.IsDuplicateKeyError(err) {
			return structs.NewInternalError(err)
		}
	}
	return nil
}

// ChallengeView is one catalog entry together with the caller's enrollment.
type ChallengeView struct {
	models.Challenge
	Enrolled    bool       `json:"enrolled"`
	Progress    int        `json:"progress"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (s *ChallengeService) List(userID uint) ([]ChallengeView, error) {
	var challenges []models.Challenge
	if err := s.DB.Order("id asc").Find(&challenges).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	var enrollments []models.ChallengeEnrollment
	if err := s.DB.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	byChallenge := make(map[uint]models.ChallengeEnrollment, len(enrollments))
	for _, e := range enrollments {
		byChallenge[e.ChallengeID] = e
	}

	views := make([]ChallengeView, 0, len(challenges))
	for _, c := range challenges {
		view := ChallengeView{Challenge: c}
		if e, ok := byChallenge[c.ID]; ok {
			view.Enrolled = true
			view.Progress = e.Progress
			view.CompletedAt = e.CompletedAt
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ChallengeService) findBySlug(slug string) (*models.Challenge, error) {
	var c models.Challenge
	if err := s.DB.Where("slug = ?", slug).First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("challenge %q not found", slug)
		}
		return nil, structs.NewInternalError(err)
	}
	return &c, nil
}

// Enroll joins the caller into the challenge. Re-enrolling keeps the existing
// row and its progress.
func (s *ChallengeService) Enroll(userID uint, slug string) (*models.ChallengeEnrollment, error) {
	c, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}

	var existing models.ChallengeEnrollment
	err = s.DB.Where("challenge_id = ? AND user_id = ?", c.ID, userID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, structs.NewInternalError(err)
	}

	row := models.ChallengeEnrollment{ChallengeID: c.ID, UserID: userID}
	if err := s.DB.Create(&row).Error; err != nil {
		if !services.IsDuplicateKeyError(err) {
			return nil, structs.NewInternalError(err)
		}
		// lost the enroll race, the existing row wins
		if err := s.DB.Where("challenge_id = ? AND user_id = ?", c.ID, userID).
			First(&row).Error; err != nil {
			return nil, structs.NewInternalError(err)
		}
	}
	return &row, nil
}

// UpdateProgress sets the caller's score and stamps completion once the goal
// is reached.
func (s *ChallengeService) UpdateProgress(userID uint, slug string, p structs.ChallengeProgressPayload) (*models.ChallengeEnrollment, error) {
	if p.Progress < 0 {
		return nil, structs.NewValidationError("progress must not be negative")
	}
	c, err := s.findBySlug(slug)
	if err != nil {
		return nil, err
	}

	var enrollment models.ChallengeEnrollment
	if err := s.DB.Where("challenge_id = ? AND user_id = ?", c.ID, userID).
		First(&enrollment).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("not enrolled in %q", slug)
		}
		return nil, structs.NewInternalError(err)
	}

	updates := map[string]interface{}{"progress": p.Progress}
	if enrollment.CompletedAt == nil && p.Progress >= c.Goal {
		now := time.Now()
		updates["completed_at"] = now
	}
	if err := s.DB.Model(&models.ChallengeEnrollment{}).Where("id = ?", enrollment.ID).
		Updates(updates).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}

	if err := s.DB.Where("id = ?", enrollment.ID).First(&enrollment).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return &enrollment, nil
}
