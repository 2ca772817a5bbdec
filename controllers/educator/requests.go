package educatorController

// LectureInput is one lecture in a course submission
type LectureInput struct {
	Title         string  `json:"lectureTitle" validate:"required"`
	Duration      float64 `json:"lectureDuration" validate:"gte=0"`
	LectureURL    string  `json:"lectureUrl"`
	IsPreviewFree bool    `json:"isPreviewFree"`
}

// ChapterInput is one chapter in a course submission
type ChapterInput struct {
	Title    string         `json:"chapterTitle" validate:"required"`
	Lectures []LectureInput `json:"chapterContent" validate:"dive"`
}

// AddCourseRequest creates a course with its content tree inline
type AddCourseRequest struct {
	Title       string         `json:"courseTitle" validate:"required,min=3"`
	Description string         `json:"courseDescription"`
	Thumbnail   string         `json:"courseThumbnail"`
	Price       float64        `json:"coursePrice" validate:"gte=0"`
	Discount    float64        `json:"discount" validate:"gte=0,lte=100"`
	IsPublished bool           `json:"isPublished"`
	Chapters    []ChapterInput `json:"courseContent" validate:"dive"`
}
