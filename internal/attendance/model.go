package attendance

import (
	"time"

	"github.com/uptrace/bun"
)

// Record is one attendance mark for a student in a course on a date.
type Record struct {
	bun.BaseModel `bun:"table:attendance,alias:att"`

	ID        string    `bun:"id,pk,type:uuid" json:"id"`
	StudentID string    `bun:"student_id,notnull,type:uuid" json:"student_id"`
	CourseID  string    `bun:"course_id,notnull,type:uuid" json:"course_id"`
	Date      time.Time `bun:"date,notnull" json:"date"`
	Present   bool      `bun:"status,notnull" json:"present"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Summary is the attendance slice of the dashboard and profile screens.
type Summary struct {
	Present int `json:"present"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}
