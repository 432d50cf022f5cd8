// README: Firebase Admin SDK initialisation for the Realtime Database client.
package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// NewRTDB initialises the Firebase Admin SDK and returns a Realtime Database
// client. If databaseURL is empty it is derived from the project_id in the
// service-account JSON, assuming the default RTDB instance.
func NewRTDB(ctx context.Context, credentialsFile, databaseURL string) (*db.Client, error) {
	if databaseURL == "" {
		projectID, err := parseProjectID(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}
		databaseURL = fmt.Sprintf("https://%s-default-rtdb.firebaseio.com", projectID)
	}

	conf := &firebase.Config{DatabaseURL: databaseURL}
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialising firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialising firebase RTDB client: %w", err)
	}
	return client, nil
}

// parseProjectID reads the service-account JSON and extracts the project_id.
func parseProjectID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	var sa struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(data, &sa); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if sa.ProjectID == "" {
		return "", fmt.Errorf("project_id is empty in %s", path)
	}
	return sa.ProjectID, nil
}
