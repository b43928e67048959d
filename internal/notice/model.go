package notice

import (
	"time"

	"github.com/uptrace/bun"
)

// Notice kinds.
const (
	KindFeed         = "feed"
	KindAnnouncement = "announcement"
)

// Feed categories.
const (
	CategoryGeneral       = "General"
	CategoryAcademics     = "Academics"
	CategoryOpportunities = "Opportunities"
	CategoryEvents        = "Events"
)

// Notice is a feed post or an official announcement.
type Notice struct {
	bun.BaseModel `bun:"table:notices,alias:n"`

	ID          string    `bun:"id,pk,type:uuid" json:"id"`
	Kind        string    `bun:"kind,notnull" json:"kind"`
	Category    string    `bun:"category,notnull,default:'General'" json:"category"`
	Title       string    `bun:"title,notnull" json:"title"`
	Body        string    `bun:"body,notnull" json:"body"`
	Tag         string    `bun:"tag" json:"tag,omitempty"`
	AuthorName  string    `bun:"author_name,notnull" json:"author_name"`
	AuthorTitle string    `bun:"author_title" json:"author_title,omitempty"`
	PostedAt    time.Time `bun:"posted_at,nullzero,notnull,default:current_timestamp" json:"posted_at"`
}

// CreateRequest is the request body for publishing a notice.
type CreateRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=feed announcement"`
	Category    string `json:"category" validate:"omitempty,oneof=General Academics Opportunities Events"`
	Title       string `json:"title" validate:"required"`
	Body        string `json:"body" validate:"required"`
	Tag         string `json:"tag"`
	AuthorName  string `json:"author_name" validate:"required"`
	AuthorTitle string `json:"author_title"`
}

// PublishedEvent is emitted on the notices subject when a notice is created.
type PublishedEvent struct {
	NoticeID string    `json:"notice_id"`
	Kind     string    `json:"kind"`
	Category string    `json:"category"`
	Title    string    `json:"title"`
	PostedAt time.Time `json:"posted_at"`
}
