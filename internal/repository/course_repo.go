package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"

	"github.com/rs/zerolog"
)

// CourseRepository defines the interface for interacting with course data.
// Reads return raw rows exactly as stored; normalization happens in the
// service layer.
type CourseRepository interface {
	ListCourses(ctx context.Context, limit, offset int) ([]model.RawCourse, error)
	// GetCourseByID retrieves a course with its modules, or (nil, nil) when absent
	GetCourseByID(ctx context.Context, courseID string) (*model.RawCourse, error)
	// CreateCourse inserts a course and its modules in one transaction
	CreateCourse(ctx context.Context, ins *model.CourseInsert) (string, error)
}

type courseRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepo{db: db, logger: logger.With().Str("repository", "CourseRepository").Logger()}
}

// ListCourses returns a page of course rows without their modules. Rows come
// back as jsonb so legacy column names survive untouched for the normalizer.
func (r *courseRepo) ListCourses(ctx context.Context, limit, offset int) ([]model.RawCourse, error) {
	query := `
		SELECT to_jsonb(c.*)
		FROM courses c
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []model.RawCourse{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var raw model.RawCourse
		if err := json.Unmarshal(payload, &raw); err != nil {
			// A single unreadable row must not take the whole listing down.
			r.logger.Error().Err(err).Msg("skipping undecodable course row")
			continue
		}
		courses = append(courses, raw)
	}
	return courses, rows.Err()
}

// GetCourseByID retrieves a course row and its module rows as jsonb.
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.RawCourse, error) {
	query := `
		SELECT to_jsonb(c.*),
		       COALESCE(jsonb_agg(to_jsonb(m.*)) FILTER (WHERE m.id IS NOT NULL), '[]'::jsonb)
		FROM courses c
		LEFT JOIN course_modules m ON m.course_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`
	var coursePayload, modulesPayload []byte
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(&coursePayload, &modulesPayload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var raw model.RawCourse
	if err := json.Unmarshal(coursePayload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode course row: %w", err)
	}
	if err := json.Unmarshal(modulesPayload, &raw.CourseModules); err != nil {
		return nil, fmt.Errorf("failed to decode module rows: %w", err)
	}
	return &raw, nil
}

// CreateCourse inserts the course and its modules, returning the new course ID.
func (r *courseRepo) CreateCourse(ctx context.Context, ins *model.CourseInsert) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	topics, err := json.Marshal(ins.Topics)
	if err != nil {
		return "", fmt.Errorf("failed to encode topics: %w", err)
	}

	var courseID string
	courseQuery := `
		INSERT INTO courses (title_en, title_es, description_en, description_es, image_url, difficulty, topics, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, courseQuery,
		ins.TitleEN, ins.TitleES, ins.DescriptionEN, ins.DescriptionES,
		ins.ImageURL, ins.Difficulty, topics, ins.DurationMinutes,
	).Scan(&courseID)
	if err != nil {
		return "", err
	}

	moduleQuery := `
		INSERT INTO course_modules (course_id, title_en, title_es, content_en, content_es, order_index, duration_minutes, content_type, is_free, resources)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, m := range ins.Modules {
		resources, err := json.Marshal(m.Resources)
		if err != nil {
			return "", fmt.Errorf("failed to encode resources: %w", err)
		}
		_, err = tx.ExecContext(ctx, moduleQuery,
			courseID, m.TitleEN, m.TitleES, m.ContentEN, m.ContentES,
			m.OrderIndex, m.DurationMinutes, m.ContentType, m.IsFree, resources,
		)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return courseID, nil
}
