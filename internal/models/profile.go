package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Profile struct {
	UserID      string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FullName    string `gorm:"column:full_name;type:text" json:"full_name"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	LinkedinURL string `gorm:"column:linkedin_url;type:text" json:"linkedin_url"`
	ResumeText  string `gorm:"column:resume_text;type:text" json:"resume_text"`
	Experience  string `gorm:"column:experience;type:text" json:"experience"`

	Skills      pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`
	Interests   pq.StringArray `gorm:"column:interests;type:text[]" json:"interests"`
	CareerGoals pq.StringArray `gorm:"column:career_goals;type:text[]" json:"career_goals"`

	// JSONB (work environment, salary range, anything the UI adds later)
	Preferences datatypes.JSON `gorm:"column:preferences;type:jsonb" json:"preferences"`

	// pgvector, one per matching facet; NULL until embeddings are generated
	SkillsEmbedding     *pgvector.Vector `gorm:"column:skills_embedding;type:vector(768)" json:"-"`
	ExperienceEmbedding *pgvector.Vector `gorm:"column:experience_embedding;type:vector(768)" json:"-"`
	InterestsEmbedding  *pgvector.Vector `gorm:"column:interests_embedding;type:vector(768)" json:"-"`

	EmbeddingUpdatedAt *time.Time `gorm:"column:embedding_updated_at;type:timestamptz" json:"embedding_updated_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// HasEmbeddings reports whether all three facet vectors are present.
func (p *Profile) HasEmbeddings() bool {
	return p.SkillsEmbedding != nil && p.ExperienceEmbedding != nil && p.InterestsEmbedding != nil
}
