package config

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// ResolveDatabaseURL fills in DBConnectionString from Secret Manager when the
// deployment provides a secret name instead of a plain DSN. A DSN already set
// in the environment always wins.
func (c *Config) ResolveDatabaseURL(ctx context.Context) error {
	if c.DBConnectionString != "" {
		return nil
	}
	if c.DBConnSecretName == "" {
		return fmt.Errorf("neither DATABASE_URL nor DATABASE_URL_SECRET_NAME is set")
	}
	if c.GCPProjectID == "" {
		return fmt.Errorf("GCP_PROJECT_ID is required to resolve the database secret")
	}

	var opts []option.ClientOption
	if c.GCPCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.GCPCredentialsFile))
	}
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	defer client.Close()

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", c.GCPProjectID, c.DBConnSecretName)
	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return fmt.Errorf("failed to access secret %s: %w", c.DBConnSecretName, err)
	}

	c.DBConnectionString = string(result.Payload.Data)
	return nil
}
