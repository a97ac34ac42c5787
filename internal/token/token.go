// Package token decodes Hawk integration tokens.
//
// An integration token is a base64-encoded JSON document issued by the
// collector. The only field the catcher cares about is the integration
// identifier, which routes events to the right collector host.
package token

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

type tokenPayload struct {
	IntegrationID string `json:"integrationId"`
}

// Decode extracts the integration identifier from an integration token.
// It has no side effects; the same token always yields the same result.
func Decode(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", errors.Wrap(err, "decoding token as base64")
	}

	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", errors.Wrap(err, "parsing token payload")
	}

	if payload.IntegrationID == "" {
		return "", errors.New("token payload has no integrationId")
	}

	return payload.IntegrationID, nil
}
