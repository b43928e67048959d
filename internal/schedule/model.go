package schedule

import (
	"time"

	"github.com/uptrace/bun"
)

// Entry types as stored in class_schedule.
const (
	TypeClass = "class"
	TypeOther = "other"
)

// Entry is one weekly schedule slot. Times are 24-hour "HH:MM" strings and
// start must precede end; day_of_week runs 0=Sunday..6=Saturday.
type Entry struct {
	bun.BaseModel `bun:"table:class_schedule,alias:cs"`

	ID        string    `bun:"id,pk,type:uuid" json:"id"`
	StudentID string    `bun:"student_id,notnull,type:uuid" json:"student_id"`
	CourseID  *string   `bun:"course_id,type:uuid" json:"course_id,omitempty"`
	DayOfWeek int       `bun:"day_of_week,notnull" json:"day_of_week"`
	StartTime string    `bun:"start_time,notnull" json:"start_time"`
	EndTime   string    `bun:"end_time,notnull" json:"end_time"`
	Type      string    `bun:"type,notnull,default:'class'" json:"type"`
	Title     string    `bun:"title,notnull" json:"title"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// View is a schedule slot as the screen renders it, times in 12-hour form.
type View struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Type      string `json:"type"`
}

// DayView is the full response for one selected date.
type DayView struct {
	Date      string `json:"date"`
	DayOfWeek int    `json:"day_of_week"`
	Entries   []View `json:"entries"`
}

// CreateEventRequest is the request body for new schedule events.
type CreateEventRequest struct {
	CourseID  string `json:"course_id"`
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=class other"`
	Title     string `json:"title" validate:"required"`
}
