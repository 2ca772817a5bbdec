package course

import "time"

// CourseRating is a single user's rating of a course. The unique index keeps
// at most one row per (course, user); submissions overwrite in place.
type CourseRating struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	CourseID  uint   `json:"-" gorm:"uniqueIndex:idx_course_user_rating;not null"`
	UserID    string `json:"userId" gorm:"uniqueIndex:idx_course_user_rating;not null"`
	Rating    int    `json:"rating" gorm:"not null"` // 1-5
	CreatedAt time.Time
	UpdatedAt time.Time
}
