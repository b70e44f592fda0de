package firebase

import (
	"context"
	"os"

	"campusbites/backend/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// credentialOptions resolves credentials from the environment.
// In Cloud Run / GCP, Application Default Credentials apply automatically.
// Locally, either GOOGLE_APPLICATION_CREDENTIALS (path to a service account
// json file) or FIREBASE_SERVICE_ACCOUNT_JSON (raw json content) can be set.
func credentialOptions() []option.ClientOption {
	opts := []option.ClientOption{}
	if cred := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); cred != "" {
		opts = append(opts, option.WithCredentialsFile(cred))
	} else if json := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); json != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(json)))
	}
	return opts
}

func NewApp(ctx context.Context, cfg config.Config) (*firebase.App, error) {
	appCfg := &firebase.Config{}
	if cfg.ProjectID != "" {
		appCfg.ProjectID = cfg.ProjectID
	}
	if cfg.StorageBucket != "" {
		appCfg.StorageBucket = cfg.StorageBucket
	}
	return firebase.NewApp(ctx, appCfg, credentialOptions()...)
}

func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	return app.Auth(ctx)
}
