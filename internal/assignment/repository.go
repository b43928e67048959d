package assignment

import (
	"context"

	"github.com/uptrace/bun"
)

type Repository interface {
	Upcoming(ctx context.Context, limit int) ([]Assignment, error)
	SubmissionsFor(ctx context.Context, studentID string, assignmentIDs []string) ([]Submission, error)
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

// Upcoming returns assignments with their course, due date ascending.
func (r *repository) Upcoming(ctx context.Context, limit int) ([]Assignment, error) {
	var assignments []Assignment
	err := r.db.NewSelect().
		Model(&assignments).
		Relation("Course").
		Order("a.due_date ASC").
		Limit(limit).
		Scan(ctx)
	return assignments, err
}

// SubmissionsFor returns the caller's submissions for the given assignments;
// zero or one row per assignment.
func (r *repository) SubmissionsFor(ctx context.Context, studentID string, assignmentIDs []string) ([]Submission, error) {
	if len(assignmentIDs) == 0 {
		return nil, nil
	}
	var submissions []Submission
	err := r.db.NewSelect().
		Model(&submissions).
		Where("sa.student_id = ?", studentID).
		Where("sa.assignment_id IN (?)", bun.In(assignmentIDs)).
		Scan(ctx)
	return submissions, err
}
