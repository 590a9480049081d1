package course

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress tracks per-lesson completion for a user.
// At most one row per (user, lesson) pair, backed by the unique index.
type UserProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}
