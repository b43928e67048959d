package assignment

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Mahidhar1516/GNI/internal/course"
)

type Assignment struct {
	bun.BaseModel `bun:"table:assignments,alias:a"`

	ID          string    `bun:"id,pk,type:uuid" json:"id"`
	CourseID    string    `bun:"course_id,notnull,type:uuid" json:"course_id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description,omitempty"`
	DueDate     time.Time `bun:"due_date,notnull" json:"due_date"`
	TotalMarks  int       `bun:"total_marks,notnull" json:"total_marks"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`

	Course *course.Course `bun:"rel:belongs-to,join:course_id=id" json:"course,omitempty"`
}

// Submission is the per-student grading record for an assignment. At most one
// row per (assignment, student); marks are set only once graded.
type Submission struct {
	bun.BaseModel `bun:"table:student_assignments,alias:sa"`

	ID            string     `bun:"id,pk,type:uuid" json:"id"`
	AssignmentID  string     `bun:"assignment_id,notnull,type:uuid" json:"assignment_id"`
	StudentID     string     `bun:"student_id,notnull,type:uuid" json:"student_id"`
	Status        string     `bun:"status,notnull,default:'pending'" json:"status"`
	MarksObtained *int       `bun:"marks_obtained" json:"marks_obtained,omitempty"`
	Feedback      string     `bun:"feedback" json:"feedback,omitempty"`
	SubmittedAt   *time.Time `bun:"submitted_at" json:"submitted_at,omitempty"`
}

// View is an upcoming assignment as the dashboard renders it: the caller's
// effective submission status plus the overdue emphasis flag.
type View struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DueDate       time.Time `json:"due_date"`
	TotalMarks    int       `json:"total_marks"`
	CourseCode    string    `json:"course_code"`
	CourseName    string    `json:"course_name"`
	Status        string    `json:"status"`
	MarksObtained *int      `json:"marks_obtained,omitempty"`
	Overdue       bool      `json:"overdue"`
}
