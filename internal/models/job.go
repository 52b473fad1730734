package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Job struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ExternalID string `gorm:"column:external_id;type:text;uniqueIndex" json:"external_id"`

	Title           string `gorm:"column:title;type:text" json:"title"`
	Company         string `gorm:"column:company;type:text" json:"company"`
	Location        string `gorm:"column:location;type:text" json:"location"`
	Salary          string `gorm:"column:salary;type:text" json:"salary"`
	JobType         string `gorm:"column:job_type;type:text" json:"job_type"`
	ExperienceLevel string `gorm:"column:experience_level;type:text" json:"experience_level"`
	Description     string `gorm:"column:description;type:text" json:"description"`

	RequiredSkills pq.StringArray `gorm:"column:required_skills;type:text[]" json:"required_skills"`

	// Jobs with NULL vectors never enter the matching candidate set.
	SkillsEmbedding     *pgvector.Vector `gorm:"column:skills_embedding;type:vector(768)" json:"-"`
	ExperienceEmbedding *pgvector.Vector `gorm:"column:experience_embedding;type:vector(768)" json:"-"`
	InterestsEmbedding  *pgvector.Vector `gorm:"column:interests_embedding;type:vector(768)" json:"-"`

	EmbeddingUpdatedAt *time.Time `gorm:"column:embedding_updated_at;type:timestamptz" json:"embedding_updated_at"`
	CreatedAt          time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Job) TableName() string { return "jobs" }

// HasEmbeddings reports whether all three facet vectors are present.
func (j *Job) HasEmbeddings() bool {
	return j.SkillsEmbedding != nil && j.ExperienceEmbedding != nil && j.InterestsEmbedding != nil
}
