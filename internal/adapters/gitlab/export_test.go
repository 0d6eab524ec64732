package gitlab

import (
	"net/http"

	"go.trai.ch/depsync/internal/core/domain"
)

// NewClientWithHTTP creates a Client using a custom http client.
func NewClientWithHTTP(cfg domain.GitLabConfig, client *http.Client) *Client {
	return newClientWithHTTP(cfg, client)
}
