package course

import "gorm.io/gorm"

// CourseLesson represents a single lesson within a module
type CourseLesson struct {
	gorm.Model
	ModuleID  uint   `json:"module_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text"`
	Position  int    `json:"position" gorm:"default:0"` // Lesson order within module
	IsDeleted bool   `gorm:"default:false"`
}
