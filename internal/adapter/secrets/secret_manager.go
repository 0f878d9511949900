// Package secrets resolves configuration values stored in Google Secret Manager.
package secrets

import (
	"context"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/pkg/errors"
)

// VersionName expands a short secret id into a full version resource name.
// Values already starting with "projects/" are returned unchanged.
func VersionName(projectID, secret string) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", errors.New("secret name is empty")
	}
	if strings.HasPrefix(secret, "projects/") {
		if !strings.Contains(secret, "/versions/") {
			secret += "/versions/latest"
		}
		return secret, nil
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", errors.Errorf("project id required to resolve secret %q", secret)
	}
	return "projects/" + projectID + "/secrets/" + secret + "/versions/latest", nil
}

// Access reads the payload of one secret version.
func Access(ctx context.Context, projectID, secret string) (string, error) {
	name, err := VersionName(projectID, secret)
	if err != nil {
		return "", err
	}
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", errors.Wrap(err, "secretmanager client")
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.Wrapf(err, "access secret %s", name)
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.Errorf("empty payload for %s", name)
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
