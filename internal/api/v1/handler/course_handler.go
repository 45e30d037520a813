package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/api/v1/dto"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes. Reads are public; ingest requires auth.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	ingest := authMw(http.HandlerFunc(h.ingestCourse))
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listCourses(w, r)
		case http.MethodPost:
			ingest.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/courses/", h.getCourse)
}

// listCourses godoc
// @Summary List courses
// @Description Returns a page of normalized courses, newest first.
// @Tags courses
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.Course
// @Failure 500 {string} string "Failed to list courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	courses, err := h.courseService.ListCourses(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list courses")
		http.Error(w, "Failed to list courses", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(courses)
}

// getCourse godoc
// @Summary Get a course
// @Description Returns one normalized course with its modules.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to retrieve course"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")
	course, err := h.courseService.GetCourseByID(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("failed to retrieve course")
		http.Error(w, "Failed to retrieve course", http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(course)
}

// ingestCourse godoc
// @Summary Ingest a course
// @Description Stores an admin-submitted course and returns it normalized.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseIngestDTO true "Course ingest request"
// @Success 201 {object} model.Course
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to ingest course"
// @Router /courses [post]
func (h *CourseHandler) ingestCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseIngestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.courseService.IngestCourse(r.Context(), courseInsertFromDTO(&req))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to ingest course")
		http.Error(w, "Failed to ingest course", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(course)
}

func courseInsertFromDTO(req *dto.CourseIngestDTO) *model.CourseInsert {
	ins := &model.CourseInsert{
		TitleEN:         req.TitleEN,
		TitleES:         req.TitleES,
		DescriptionEN:   req.DescriptionEN,
		DescriptionES:   req.DescriptionES,
		ImageURL:        req.ImageURL,
		Difficulty:      req.Difficulty,
		Topics:          req.Topics,
		DurationMinutes: req.DurationMinutes,
	}
	for _, m := range req.Modules {
		resources := make([]model.Resource, 0, len(m.Resources))
		for _, res := range m.Resources {
			resources = append(resources, model.Resource{Title: res.Title, URL: res.URL, Type: res.Type})
		}
		ins.Modules = append(ins.Modules, model.ModuleInsert{
			TitleEN:         m.TitleEN,
			TitleES:         m.TitleES,
			ContentEN:       m.ContentEN,
			ContentES:       m.ContentES,
			OrderIndex:      m.OrderIndex,
			DurationMinutes: m.DurationMinutes,
			ContentType:     m.ContentType,
			IsFree:          m.IsFree,
			Resources:       resources,
		})
	}
	return ins
}
