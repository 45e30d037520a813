package router

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/api/v1/handler"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/config"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/middleware"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/pubsub"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/repository"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling)
	dsn := cfg.DBConnectionString
	// Local databases have no TLS; production DSNs arrive with their own
	// sslmode.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		dsn += dsnSeparator(dsn) + "sslmode=disable"
	}
	// Behind a transaction pooler (pgbouncer/supavisor) server-side prepared
	// statements break, so force the simple query protocol.
	if cfg.Environment != "development" && !strings.Contains(dsn, "prefer_simple_protocol") {
		dsn += dsnSeparator(dsn) + "prefer_simple_protocol=true"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// 2. Initialize S3 client for Supabase storage
	s3Config, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})

	// 3. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 4. Initialize Pub/Sub publisher for course events
	publisher, err := pubsub.NewPublisher(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}

	// 5. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(db, logger)
	articleRepo := repository.NewArticleRepo(db)

	courseSvc := service.NewCourseService(courseRepo, publisher, cfg.CourseEventsTopic, logger)
	articleSvc := service.NewArticleService(articleRepo)
	assetSvc := service.NewAssetService(s3Client, cfg.S3Bucket, time.Duration(cfg.UploadURLTTLMinutes)*time.Minute, logger)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	articleHandler := handler.NewArticleHandler(articleSvc, logger)
	assetHandler := handler.NewAssetHandler(assetSvc, validate, logger)

	// 6. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret, logger)

	// 7. Create ServeMux router with the API v1 routes under /v1
	apiV1Mux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	articleHandler.RegisterRoutes(apiV1Mux)
	assetHandler.RegisterRoutes(apiV1Mux, authMiddleware)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// Redirect /api/* to /v1/* for backward compatibility with the old
	// frontend routes.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/")
		http.Redirect(w, r, "/v1/"+rest, http.StatusMovedPermanently)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// 8. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), db, nil
}

func dsnSeparator(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return "&"
		}
		return "?"
	}
	return " "
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
