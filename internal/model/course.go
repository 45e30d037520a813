package model

// RawCourse mirrors a course row as the upstream database returns it. Several
// columns exist under two names (legacy and current), and the loosely typed
// ones are declared as `any` so a malformed row still unmarshals; the
// normalize package resolves them with runtime type guards.
type RawCourse struct {
	ID            string `json:"id"`
	TitleEN       string `json:"title_en"`
	TitleES       string `json:"title_es"`
	DescriptionEN string `json:"description_en"`
	DescriptionES string `json:"description_es"`
	ImageURL      string `json:"image_url"`

	Difficulty      any `json:"difficulty"`
	DifficultyLevel any `json:"difficulty_level"`

	Topics any `json:"topics"`

	DurationMinutes      any `json:"duration_minutes"`
	TotalDurationMinutes any `json:"total_duration_minutes"`

	EnrollmentCount any `json:"enrollment_count"`
	EnrolledCount   any `json:"enrolled_count"`
	RatingAvg       any `json:"rating_avg"`
	ViewCount       any `json:"view_count"`

	LearningObjectivesEN any `json:"learning_objectives_en"`
	LearningObjectivesES any `json:"learning_objectives_es"`

	CourseModules []RawModule `json:"course_modules"`
}

// RawModule mirrors a course_modules row. Only the id is required; everything
// else may be missing, null, or of the wrong type.
type RawModule struct {
	ID any `json:"id"`

	TitleEN   any `json:"title_en"`
	TitleES   any `json:"title_es"`
	ContentEN any `json:"content_en"`
	ContentES any `json:"content_es"`

	OrderIndex any `json:"order_index"`

	DurationMinutes any `json:"duration_minutes"`
	EstimatedTime   any `json:"estimated_time"`

	ContentType any `json:"content_type"`
	Type        any `json:"type"`

	IsFree    any `json:"is_free"`
	Resources any `json:"resources"`
}

// Course is the canonical course shape consumed by handlers: every field is
// present and well typed regardless of how degraded the raw row was.
type Course struct {
	ID                   string   `json:"id"`
	TitleEN              string   `json:"title_en"`
	TitleES              string   `json:"title_es"`
	DescriptionEN        string   `json:"description_en"`
	DescriptionES        string   `json:"description_es"`
	ImageURL             string   `json:"image_url"`
	Difficulty           string   `json:"difficulty"`
	Topics               []string `json:"topics"`
	DurationMinutes      int      `json:"duration_minutes"`
	EnrollmentCount      int      `json:"enrollment_count"`
	RatingAvg            float64  `json:"rating_avg"`
	ViewCount            int      `json:"view_count"`
	LearningObjectivesEN []string `json:"learning_objectives_en"`
	LearningObjectivesES []string `json:"learning_objectives_es"`
	CourseModules        []Module `json:"course_modules"`
}

// Module is the canonical learning-unit shape. Description holds a short
// plain-text summary derived from the module content.
type Module struct {
	ID              string     `json:"id"`
	TitleEN         string     `json:"title_en"`
	TitleES         string     `json:"title_es"`
	ContentEN       string     `json:"content_en"`
	ContentES       string     `json:"content_es"`
	DescriptionEN   string     `json:"description_en"`
	DescriptionES   string     `json:"description_es"`
	OrderIndex      int        `json:"order_index"`
	DurationMinutes int        `json:"duration_minutes"`
	ContentType     string     `json:"content_type"`
	IsFree          bool       `json:"is_free"`
	Resources       []Resource `json:"resources"`
}

// Resource is a validated external link attached to a module. Type stays nil
// when the raw entry carried no usable type string.
type Resource struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Type  *string `json:"type"`
}
