package profile

import (
	"time"

	"github.com/uptrace/bun"
)

// Profile is the student record behind every screen's identity lookups.
type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	ID         string    `bun:"id,pk,type:uuid" json:"id"`
	Email      string    `bun:"email,unique,notnull" json:"email"`
	Password   string    `bun:"password,notnull" json:"-"`
	FullName   string    `bun:"full_name,notnull" json:"full_name"`
	StudentID  string    `bun:"student_id,unique,notnull" json:"student_id"`
	Department string    `bun:"department" json:"department,omitempty"`
	Semester   int       `bun:"semester" json:"semester,omitempty"`
	Phone      string    `bun:"phone" json:"phone,omitempty"`
	AvatarURL  string    `bun:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// UpdateRequest is the request body for profile updates.
type UpdateRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Department string `json:"department"`
	Semester   int    `json:"semester" validate:"min=0,max=12"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatar_url"`
}

// View is the profile as the screens render it.
type View struct {
	*Profile
	Initials string `json:"initials"`
}
