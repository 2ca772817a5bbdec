package course

import "gorm.io/gorm"

// Course represents a marketplace course with its content tree
type Course struct {
	gorm.Model
	Title       string  `json:"courseTitle"`
	Description string  `json:"courseDescription"`
	Thumbnail   string  `json:"courseThumbnail"`
	Price       float64 `json:"coursePrice" gorm:"default:0"`
	Discount    float64 `json:"discount" gorm:"default:0"` // percentage, 0-100
	EducatorID  string  `json:"educator" gorm:"index"`
	IsPublished bool    `json:"isPublished" gorm:"default:false"`

	Chapters []Chapter      `json:"courseContent" gorm:"foreignKey:CourseID"`
	Ratings  []CourseRating `json:"courseRatings" gorm:"foreignKey:CourseID"`
}

// Chapter is an ordered section of a course
type Chapter struct {
	gorm.Model
	CourseID   uint   `json:"-" gorm:"index;not null"`
	Title      string `json:"chapterTitle"`
	OrderIndex int    `json:"chapterOrder" gorm:"default:0"`

	Lectures []Lecture `json:"chapterContent" gorm:"foreignKey:ChapterID"`
}

// Lecture is a single unit of course content. Duration is in minutes.
type Lecture struct {
	gorm.Model
	ChapterID     uint    `json:"-" gorm:"index;not null"`
	Title         string  `json:"lectureTitle"`
	Duration      float64 `json:"lectureDuration" gorm:"default:0"`
	LectureURL    string  `json:"lectureUrl"`
	IsPreviewFree bool    `json:"isPreviewFree" gorm:"default:false"`
	OrderIndex    int     `json:"lectureOrder" gorm:"default:0"`
}
