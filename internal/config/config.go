package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"production"`

	// Either a full connection string, or the name of a Secret Manager
	// secret that holds one (production deployments keep the DSN out of the
	// environment).
	DBConnectionString string `envconfig:"DATABASE_URL"`
	DBConnSecretName   string `envconfig:"DATABASE_URL_SECRET_NAME"`

	JWTSecret string `envconfig:"SUPABASE_JWT_SECRET" required:"true"`

	GCPProjectID       string `envconfig:"GCP_PROJECT_ID"`
	GCPCredentialsFile string `envconfig:"GCP_CREDENTIALS_FILE"`
	CourseEventsTopic  string `envconfig:"COURSE_EVENTS_TOPIC" default:"course_events"`

	// Supabase storage speaks the S3 protocol; covers are uploaded straight
	// from the admin UI via presigned URLs.
	S3URL       string `envconfig:"STORAGE_S3_URL" required:"true"`
	S3Bucket    string `envconfig:"STORAGE_S3_BUCKET" default:"course-covers"`
	S3Region    string `envconfig:"STORAGE_S3_REGION" default:"us-east-1"`
	S3AccessKey string `envconfig:"STORAGE_S3_ACCESS_KEY" required:"true"`
	S3SecretKey string `envconfig:"STORAGE_S3_SECRET_KEY" required:"true"`

	UploadURLTTLMinutes int `envconfig:"UPLOAD_URL_TTL_MINUTES" default:"15"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
