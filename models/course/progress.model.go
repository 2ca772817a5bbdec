package course

import "time"

// CourseProgress tracks a user's position in a course. Completed reflects
// full-course completion: it is set when every lecture of the course has a
// completion row, and once true it is never cleared.
type CourseProgress struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UserID    string `json:"userId" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	CourseID  uint   `json:"courseId" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	Completed bool   `json:"completed" gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	LectureCompleted []LectureCompletion `json:"lectureCompleted" gorm:"foreignKey:UserID,CourseID;references:UserID,CourseID"`
}

// LectureCompletion marks a single lecture as done. Rows are only ever added;
// the unique index makes the marking idempotent.
type LectureCompletion struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UserID    string `json:"-" gorm:"uniqueIndex:idx_lecture_completion;not null"`
	CourseID  uint   `json:"-" gorm:"uniqueIndex:idx_lecture_completion;not null"`
	LectureID uint   `json:"lectureId" gorm:"uniqueIndex:idx_lecture_completion;not null"`
	CreatedAt time.Time
}
