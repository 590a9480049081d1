package course

import "gorm.io/gorm"

// CourseModule represents a section within a course
type CourseModule struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Position  int    `json:"position" gorm:"default:0"` // Module order in course
	IsDeleted bool   `gorm:"default:false"`
}
