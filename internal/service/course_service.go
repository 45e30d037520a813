package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/normalize"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/pubsub"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/repository"

	"github.com/rs/zerolog"
)

// CourseService defines the course operations exposed to handlers. Every
// course leaving this service has been normalized: handlers never see raw
// rows.
type CourseService interface {
	ListCourses(ctx context.Context, limit, offset int) ([]model.Course, error)
	// GetCourseByID returns the normalized course, or (nil, nil) when absent
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// IngestCourse stores an admin-submitted course and announces it
	IngestCourse(ctx context.Context, ins *model.CourseInsert) (*model.Course, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	repo        repository.CourseRepository
	publisher   pubsub.Publisher
	eventsTopic string
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository, publisher pubsub.Publisher, eventsTopic string, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:        repo,
		publisher:   publisher,
		eventsTopic: eventsTopic,
		logger:      logger.With().Str("service", "CourseService").Logger(),
	}
}

// ListCourses returns a page of normalized courses (without modules).
func (s *courseService) ListCourses(ctx context.Context, limit, offset int) ([]model.Course, error) {
	raws, err := s.repo.ListCourses(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	courses := make([]model.Course, 0, len(raws))
	for i := range raws {
		courses = append(courses, normalize.NormalizeCourse(&raws[i]))
	}
	return courses, nil
}

// GetCourseByID fetches and normalizes a course with its modules.
func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	raw, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return normalize.NormalizeCourseResponse(&normalize.CourseResponse{Data: raw}), nil
}

// IngestCourse stores the course, publishes a course.ingested event and
// returns the freshly normalized record.
func (s *courseService) IngestCourse(ctx context.Context, ins *model.CourseInsert) (*model.Course, error) {
	courseID, err := s.repo.CreateCourse(ctx, ins)
	if err != nil {
		return nil, fmt.Errorf("failed to store course: %w", err)
	}

	payload, err := pubsub.CourseEvent{
		Type:       "course.ingested",
		CourseID:   courseID,
		OccurredAt: time.Now().UTC(),
	}.Marshal()
	if err == nil {
		// The course is already stored; a publish failure only delays
		// downstream pipelines, so it is logged rather than surfaced.
		if _, err := s.publisher.Publish(ctx, s.eventsTopic, payload); err != nil {
			s.logger.Error().Err(err).Str("course_id", courseID).Msg("failed to publish course.ingested event")
		}
	}

	return s.GetCourseByID(ctx, courseID)
}
