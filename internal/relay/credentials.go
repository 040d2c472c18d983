package relay

import (
	"encoding/json"
	"fmt"
	"os"
)

type credentialsFile struct {
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
}

// ValidateCredentials reads the service account file and checks the fields
// the push gateway client needs. A failure here is fatal at startup: the
// process must not serve traffic without a working gateway credential.
func ValidateCredentials(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read credentials file: %w", err)
	}

	var creds credentialsFile
	if err := json.Unmarshal(raw, &creds); err != nil {
		return fmt.Errorf("parse credentials file: %w", err)
	}

	switch {
	case creds.ProjectID == "":
		return fmt.Errorf("credentials file %s: missing project_id", path)
	case creds.PrivateKey == "":
		return fmt.Errorf("credentials file %s: missing private_key", path)
	case creds.ClientEmail == "":
		return fmt.Errorf("credentials file %s: missing client_email", path)
	}
	return nil
}
