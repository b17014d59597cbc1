package models

// LectureStatus tracks a student's progress through a lecture.
type LectureStatus string

const (
	LectureCompleted LectureStatus = "completed"
	LecturePending   LectureStatus = "pending"
)

// LectureType distinguishes the kinds of course content.
type LectureType string

const (
	LectureTypeLecture    LectureType = "lecture"
	LectureTypeAssignment LectureType = "assignment"
	LectureTypeReading    LectureType = "reading"
	LectureTypeQuiz       LectureType = "quiz"
)

// Lecture is a single content item inside a course module.
type Lecture struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Duration string        `json:"duration"`
	Status   LectureStatus `json:"status"`
	Type     LectureType   `json:"type"`
	URL      string        `json:"url,omitempty"`
	FileType string        `json:"fileType,omitempty"`
}

// Module groups lectures inside a course.
type Module struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Lectures []Lecture `json:"lectures"`
}

// Course is an academic offering with its content tree.
type Course struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Code            string   `json:"code"`
	Instructor      string   `json:"instructor"`
	InstructorImage string   `json:"instructorImage,omitempty"`
	NotesCount      int      `json:"notesCount"`
	LecturesCount   int      `json:"lecturesCount"`
	Modules         []Module `json:"modules"`
	Description     string   `json:"description"`
}
