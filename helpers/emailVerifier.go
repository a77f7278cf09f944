package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// The email verification provider is only ever called from here, with the API
// key read from the server environment. The key must never reach a client.

var emailVerifierHTTPClient = &http.Client{Timeout: 10 * time.Second}

type emailVerdict struct {
	Email       string `json:"email"`
	Deliverable string `json:"deliverability"`
	IsValid     struct {
		Value bool `json:"value"`
	} `json:"is_valid_format"`
}

// VerifyEmail gates employee creation on the provider's deliverability
// verdict. With no EMAIL_VERIFIER_API_KEY configured the gate is open: local
// and demo setups should not depend on a paid third party.
func VerifyEmail(ctx context.Context, email string) (bool, error) {
	apiKey := os.Getenv("EMAIL_VERIFIER_API_KEY")
	if apiKey == "" {
		return true, nil
	}
	endpoint := os.Getenv("EMAIL_VERIFIER_URL")
	if endpoint == "" {
		endpoint = "https://emailvalidation.abstractapi.com/v1/"
	}

	query := url.Values{}
	query.Set("api_key", apiKey)
	query.Set("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return false, err
	}
	resp, err := emailVerifierHTTPClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("email verification returned status %d", resp.StatusCode)
	}

	var verdict emailVerdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return false, err
	}
	if !verdict.IsValid.Value {
		return false, nil
	}
	return verdict.Deliverable != "UNDELIVERABLE", nil
}
