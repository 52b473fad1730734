package models

import "time"

const (
	StepSkill     = "skill"
	StepProject   = "project"
	StepCourse    = "course"
	StepMilestone = "milestone"
)

const (
	PathActive    = "active"
	PathCompleted = "completed"
)

type RoadmapStep struct {
	Type        string   `bson:"type" json:"type"` // skill|project|course|milestone
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Duration    string   `bson:"duration" json:"duration"`
	Completed   bool     `bson:"completed" json:"completed"`
	Resources   []string `bson:"resources,omitempty" json:"resources,omitempty"`
}

// SavedPath binds a roadmap to a (user_id, career_id) pair, unique per pair.
type SavedPath struct {
	PathID      string        `bson:"path_id" json:"path_id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	CareerID    string        `bson:"career_id" json:"career_id"`
	CareerTitle string        `bson:"career_title" json:"career_title"`
	Steps       []RoadmapStep `bson:"steps" json:"steps"`

	ProgressPercentage float64 `bson:"progress_percentage" json:"progress_percentage"`
	Status             string  `bson:"status" json:"status"` // active|completed

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RecalcProgress recomputes progress_percentage from step completion and
// flips status to completed exactly when progress reaches 100.
func (p *SavedPath) RecalcProgress() {
	if len(p.Steps) == 0 {
		p.ProgressPercentage = 0
		p.Status = PathActive
		return
	}
	done := 0
	for _, s := range p.Steps {
		if s.Completed {
			done++
		}
	}
	p.ProgressPercentage = float64(done) / float64(len(p.Steps)) * 100
	if p.ProgressPercentage >= 100 {
		p.Status = PathCompleted
	} else {
		p.Status = PathActive
	}
}
