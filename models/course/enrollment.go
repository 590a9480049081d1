package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment grants a user access to a course's lessons, created at checkout
type Enrollment struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index:idx_enrollment_user_course;not null"`
	CourseID          uint       `json:"course_id" gorm:"index:idx_enrollment_user_course;not null"`
	EnrolledAt        time.Time  `json:"enrolled_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	CertificateIssued bool       `json:"certificate_issued" gorm:"default:false"`
	IsDeleted         bool       `gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
