package attendance

import (
	"context"

	"github.com/uptrace/bun"
)

type Repository interface {
	ListByStudent(ctx context.Context, studentID, courseID string) ([]Record, error)
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

// ListByStudent returns every attendance record for the student, optionally
// scoped to one course.
func (r *repository) ListByStudent(ctx context.Context, studentID, courseID string) ([]Record, error) {
	var records []Record
	q := r.db.NewSelect().
		Model(&records).
		Where("att.student_id = ?", studentID).
		Order("att.date DESC")
	if courseID != "" {
		q = q.Where("att.course_id = ?", courseID)
	}
	err := q.Scan(ctx)
	return records, err
}
