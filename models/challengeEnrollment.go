package models

import "time"

type ChallengeEnrollment struct {
	ID          uint       `gorm:"column:id;primary_key" json:"id"`
	ChallengeID uint       `gorm:"column:challenge_id;unique_index:idx_enroll_challenge_user" json:"challenge_id"`
	UserID      uint       `gorm:"column:user_id;unique_index:idx_enroll_challenge_user" json:"user_id"`
	Progress    int        `gorm:"column:progress" json:"progress"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (c *ChallengeEnrollment) TableName() string {
	return "challenge_enrollments"
}
