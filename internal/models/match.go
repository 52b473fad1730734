package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobMatch is a derived row, overwritten on every refresh for its
// (user_id, job_id) key.
type JobMatch struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;uniqueIndex:idx_match_user_job" json:"user_id"`
	JobID  string `gorm:"column:job_id;type:uuid;uniqueIndex:idx_match_user_job" json:"job_id"`

	Job Job `gorm:"foreignKey:JobID;references:ID" json:"job"`

	SkillsScore     float64 `gorm:"column:skills_score" json:"skills_score"`
	ExperienceScore float64 `gorm:"column:experience_score" json:"experience_score"`
	InterestsScore  float64 `gorm:"column:interests_score" json:"interests_score"`
	WeightedScore   float64 `gorm:"column:weighted_score" json:"weighted_score"`

	MatchExplanation datatypes.JSON `gorm:"column:match_explanation;type:jsonb" json:"match_explanation"`

	ComputedAt time.Time `gorm:"column:computed_at;type:timestamptz" json:"computed_at"`
}

func (JobMatch) TableName() string { return "job_matches" }
