package course

import "time"

// Enrollment grants a user access to a course. A row is created exactly once,
// when the purchase completes, and is never revoked.
type Enrollment struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UserID    string `json:"userId" gorm:"uniqueIndex:idx_user_course_enrollment;not null"`
	CourseID  uint   `json:"courseId" gorm:"uniqueIndex:idx_user_course_enrollment;not null"`
	CreatedAt time.Time

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
