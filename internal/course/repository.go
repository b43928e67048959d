package course

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/Mahidhar1516/GNI/internal/db"
)

type Repository interface {
	GetEnrolled(ctx context.Context, studentID string) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	GetEnrollment(ctx context.Context, studentID, courseID string) (*Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

// GetEnrolled returns the courses the student has an active enrollment in.
func (r *repository) GetEnrolled(ctx context.Context, studentID string) ([]Course, error) {
	var courses []Course
	err := r.db.NewSelect().
		Model(&courses).
		Join("JOIN student_courses AS sc ON sc.course_id = c.id").
		Where("sc.student_id = ?", studentID).
		Where("sc.status = ?", StatusActive).
		Order("c.course_code ASC").
		Scan(ctx)
	return courses, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Course, error) {
	course := new(Course)
	err := r.db.NewSelect().Model(course).Where("c.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *repository) GetEnrollment(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	enrollment := new(Enrollment)
	err := r.db.NewSelect().
		Model(enrollment).
		Where("sc.student_id = ?", studentID).
		Where("sc.course_id = ?", courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (r *repository) CreateEnrollment(ctx context.Context, enrollment *Enrollment) error {
	_, err := r.db.NewInsert().Model(enrollment).Exec(ctx)
	if db.IsUniqueViolation(err) {
		// The (student, course) constraint caught a concurrent duplicate.
		return ErrAlreadyEnrolled
	}
	return err
}
