package userController

// PurchaseRequest starts a checkout for one course
type PurchaseRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// ProgressRequest marks one lecture of a course as completed
type ProgressRequest struct {
	CourseID  uint `json:"courseId" validate:"required"`
	LectureID uint `json:"lectureId" validate:"required"`
}

// ProgressQueryRequest reads the caller's progress for a course
type ProgressQueryRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// RatingRequest submits or replaces the caller's rating for a course
type RatingRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
	Rating   int  `json:"rating" validate:"required,min=1,max=5"`
}
