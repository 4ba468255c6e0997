package oauth2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/AradhyaSharma31/pulsar/errors"
	"github.com/AradhyaSharma31/pulsar/httpclient"
)

// Metadata holds the authorization-server endpoints discovered from the
// issuer's well-known configuration document.
type Metadata struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserInfoEndpoint      string `json:"userinfo_endpoint"`
	JWKSURI               string `json:"jwks_uri"`
	DeviceAuthEndpoint    string `json:"device_authorization_endpoint"`
}

// metadataURL derives the well-known configuration URL from an issuer URL.
func metadataURL(issuer *url.URL) string {
	base := strings.TrimSuffix(issuer.String(), "/")
	return base + "/.well-known/openid-configuration"
}

// resolveMetadata fetches and decodes the issuer's metadata document using
// the flow's own HTTP client.
func resolveMetadata(ctx context.Context, client *httpclient.Client, issuer *url.URL) (*Metadata, error) {
	resp, err := client.Get(ctx, metadataURL(issuer))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.Metadata(fmt.Sprintf("metadata endpoint returned HTTP %d", resp.StatusCode))
	}

	var md Metadata
	if err := json.Unmarshal(resp.Body, &md); err != nil {
		return nil, errors.Metadata("undecodable metadata document").WithCause(err)
	}
	if md.TokenEndpoint == "" {
		return nil, errors.Metadata("metadata document is missing token_endpoint")
	}
	return &md, nil
}
