package model

// CourseInsert carries a validated admin ingest payload into the repository.
type CourseInsert struct {
	TitleEN         string
	TitleES         string
	DescriptionEN   string
	DescriptionES   string
	ImageURL        string
	Difficulty      string
	Topics          []string
	DurationMinutes *int
	Modules         []ModuleInsert
}

// ModuleInsert is one learning unit of an ingested course.
type ModuleInsert struct {
	TitleEN         string
	TitleES         string
	ContentEN       string
	ContentES       string
	OrderIndex      int
	DurationMinutes *int
	ContentType     string
	IsFree          *bool
	Resources       []Resource
}
