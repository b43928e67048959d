package course

import (
	"time"

	"github.com/uptrace/bun"
)

// Enrollment statuses as stored in student_courses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
)

type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID          string    `bun:"id,pk,type:uuid" json:"id"`
	CourseCode  string    `bun:"course_code,unique,notnull" json:"course_code"`
	CourseName  string    `bun:"course_name,notnull" json:"course_name"`
	Instructor  string    `bun:"instructor,notnull" json:"instructor"`
	Credits     int       `bun:"credits,notnull" json:"credits"`
	Semester    int       `bun:"semester,notnull" json:"semester"`
	Description string    `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Enrollment links a student to a course. One row per (student, course).
type Enrollment struct {
	bun.BaseModel `bun:"table:student_courses,alias:sc"`

	ID             string    `bun:"id,pk,type:uuid" json:"id"`
	StudentID      string    `bun:"student_id,notnull,type:uuid,unique:student_course" json:"student_id"`
	CourseID       string    `bun:"course_id,notnull,type:uuid,unique:student_course" json:"course_id"`
	Status         string    `bun:"status,notnull,default:'active'" json:"status"`
	EnrollmentDate time.Time `bun:"enrollment_date,nullzero,notnull,default:current_timestamp" json:"enrollment_date"`

	Course *Course `bun:"rel:belongs-to,join:course_id=id" json:"course,omitempty"`
}

// View is a course as the learning screen renders it: the tile initials plus
// a stable color rotation index.
type View struct {
	*Course
	Initials   string `json:"initials"`
	ColorIndex int    `json:"color_index"`
}
