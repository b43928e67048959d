package placement

import (
	"time"

	"github.com/uptrace/bun"
)

// Job posting types.
const (
	TypeJob        = "job"
	TypeInternship = "internship"
)

// Derived posting statuses relative to the viewing student.
const (
	StatusOpen    = "open"
	StatusApplied = "applied"
)

// Job is a placement posting.
type Job struct {
	bun.BaseModel `bun:"table:placement_jobs,alias:pj"`

	ID        string    `bun:"id,pk,type:uuid" json:"id"`
	Company   string    `bun:"company,notnull" json:"company"`
	Logo      string    `bun:"logo" json:"logo,omitempty"`
	Position  string    `bun:"position,notnull" json:"position"`
	Location  string    `bun:"location" json:"location,omitempty"`
	Salary    string    `bun:"salary" json:"salary,omitempty"`
	Openings  int       `bun:"openings,notnull,default:1" json:"openings"`
	ApplyBy   time.Time `bun:"apply_by,notnull" json:"apply_by"`
	Type      string    `bun:"type,notnull,default:'job'" json:"type"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Application records that a student applied to a job. One row per
// student and job.
type Application struct {
	bun.BaseModel `bun:"table:job_applications,alias:pa"`

	ID        string    `bun:"id,pk,type:uuid" json:"id"`
	JobID     string    `bun:"job_id,notnull,type:uuid,unique:job_student" json:"job_id"`
	StudentID string    `bun:"student_id,notnull,type:uuid,unique:job_student" json:"student_id"`
	AppliedAt time.Time `bun:"applied_at,nullzero,notnull,default:current_timestamp" json:"applied_at"`
}

// View is a posting with the caller's status folded in.
type View struct {
	*Job
	Status string `json:"status"`
}

// AppliedEvent is the activity event emitted when a student applies.
type AppliedEvent struct {
	StudentID string    `json:"student_id"`
	JobID     string    `json:"job_id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	AppliedAt time.Time `json:"applied_at"`
}
