package models

// CourseLevel is the difficulty label of a course. It travels as plain text.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Valid reports whether l is one of the three known levels
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type CourseInstructor struct {
	Name      string `json:"name" yaml:"name"`
	Bio       string `json:"bio" yaml:"bio"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

type CourseLesson struct {
	Title    string `json:"title" yaml:"title"`
	Duration string `json:"duration" yaml:"duration"`
}

// Course represents a course listing. Price and Duration are display strings.
type Course struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description" yaml:"description"`
	ImageURL     string            `json:"imageUrl" yaml:"imageUrl"`
	AuthorName   string            `json:"authorName" yaml:"authorName"`
	Instructor   *CourseInstructor `json:"instructor,omitempty" yaml:"instructor"`
	Rating       *float64          `json:"rating,omitempty" yaml:"rating"`
	StudentCount *int              `json:"studentCount,omitempty" yaml:"studentCount"`
	Price        string            `json:"price" yaml:"price"`
	Category     string            `json:"category" yaml:"category"`
	Level        CourseLevel       `json:"level" yaml:"level"`
	Duration     *string           `json:"duration,omitempty" yaml:"duration"`
	Lessons      []CourseLesson    `json:"lessons,omitempty" yaml:"lessons"`
}
