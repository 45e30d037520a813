package dto

// CourseIngestDTO is the admin request for ingesting a course. Only the
// English title is mandatory; everything else is defaulted by normalization
// on the way back out.
type CourseIngestDTO struct {
	TitleEN         string            `json:"title_en" validate:"required"`
	TitleES         string            `json:"title_es"`
	DescriptionEN   string            `json:"description_en"`
	DescriptionES   string            `json:"description_es"`
	ImageURL        string            `json:"image_url"`
	Difficulty      string            `json:"difficulty"`
	Topics          []string          `json:"topics"`
	DurationMinutes *int              `json:"duration_minutes"`
	Modules         []ModuleIngestDTO `json:"modules" validate:"dive"`
}

// ModuleIngestDTO is one learning unit of an ingested course.
type ModuleIngestDTO struct {
	TitleEN         string        `json:"title_en"`
	TitleES         string        `json:"title_es"`
	ContentEN       string        `json:"content_en"`
	ContentES       string        `json:"content_es"`
	OrderIndex      int           `json:"order_index" validate:"gte=0"`
	DurationMinutes *int          `json:"duration_minutes"`
	ContentType     string        `json:"content_type"`
	IsFree          *bool         `json:"is_free"`
	Resources       []ResourceDTO `json:"resources" validate:"dive"`
}

// ResourceDTO is an external link attached to a module.
type ResourceDTO struct {
	Title string  `json:"title" validate:"required"`
	URL   string  `json:"url" validate:"required,url"`
	Type  *string `json:"type"`
}
