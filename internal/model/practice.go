package model

import (
	"time"
)

// PracticeAction is a named recurring habit owned by one user.
// LastFinishTime mirrors the finish time of the newest PracticeRecord and
// is maintained inside the finish transaction, never recomputed on read.
type PracticeAction struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	UserID         int64      `gorm:"index;not null" json:"user_id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	CreateTime     time.Time  `gorm:"not null" json:"create_time"`
	LastFinishTime *time.Time `json:"last_finish_time"`
}

// PracticeRecord is one completion event. Rows are append-only.
type PracticeRecord struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	ActionID   int64     `gorm:"index;not null" json:"action_id"`
	FinishTime time.Time `gorm:"index;not null" json:"finish_time"`
	Note       *string   `gorm:"type:text" json:"note"`
}

// ActionWithStats is the read-only projection behind GET /api/actions.
// It is scanned straight out of the stats query, not persisted.
type ActionWithStats struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Name           string     `json:"name"`
	CreateTime     time.Time  `json:"create_time"`
	LastFinishTime *time.Time `json:"last_finish_time"`
	TotalFinished  int64      `json:"total_finished"`
	FinishedToday  bool       `json:"finished_today"`
}
