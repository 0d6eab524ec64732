// Package gitlab implements project search and repository browsing against the GitLab v4 API.
package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	apiPrefix = "/api/v4"
	perPage   = "100"
	// maxPages bounds pagination against a misbehaving X-Next-Page header.
	maxPages = 1000
)

var (
	_ ports.ProjectSearcher   = (*Client)(nil)
	_ ports.RepositoryBrowser = (*Client)(nil)
	_ ports.BranchResolver    = (*Client)(nil)
)

// Client talks to one GitLab instance. The token is optional.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client from the gitlab configuration.
func NewClient(cfg domain.GitLabConfig) *Client {
	return newClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func newClientWithHTTP(cfg domain.GitLabConfig, client *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		token:      cfg.Token,
		httpClient: client,
	}
}

// Authenticated reports whether requests carry a token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type projectDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
	HTTPURLToRepo     string `json:"http_url_to_repo"`
	DefaultBranch     string `json:"default_branch"`
}

func (p projectDTO) toDomain() domain.Project {
	return domain.Project{
		ID:                p.ID,
		Name:              p.Name,
		PathWithNamespace: p.PathWithNamespace,
		WebURL:            p.WebURL,
		CloneURL:          p.HTTPURLToRepo,
		DefaultBranch:     p.DefaultBranch,
	}
}

type treeEntryDTO struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// SearchProjects returns the projects matching name across every result page.
// Matching is done by the server and is fuzzy; callers filter for exact names.
func (c *Client) SearchProjects(ctx context.Context, name string) ([]domain.Project, error) {
	query := url.Values{}
	query.Set("search", name)
	query.Set("simple", "true")
	query.Set("per_page", perPage)

	var projects []domain.Project
	err := c.eachPage(ctx, "/projects", query, func(body []byte) error {
		var dtos []projectDTO
		if err := json.Unmarshal(body, &dtos); err != nil {
			return zerr.Wrap(err, domain.ErrAPIParseFailed.Error())
		}
		for _, dto := range dtos {
			projects = append(projects, dto.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectSearchFailed.Error()), "app", name)
	}
	return projects, nil
}

// DefaultBranch returns the default branch of the referenced project.
func (c *Client) DefaultBranch(ctx context.Context, ref domain.ProjectRef) (string, error) {
	if !ref.Usable() {
		return "", domain.ErrUnusableProjectRef
	}

	body, _, err := c.get(ctx, "/projects/"+ref.APIIdentifier(), nil)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrProjectLookupFailed.Error()), "project", ref.String())
	}

	var dto projectDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		err = zerr.Wrap(zerr.Wrap(err, domain.ErrAPIParseFailed.Error()), domain.ErrProjectLookupFailed.Error())
		return "", zerr.With(err, "project", ref.String())
	}
	return dto.DefaultBranch, nil
}

// ListFiles returns the paths of all files at any depth below dir on branch.
// A project without dir yields an empty list.
func (c *Client) ListFiles(ctx context.Context, ref domain.ProjectRef, dir, branch string) ([]string, error) {
	if !ref.Usable() {
		return nil, domain.ErrUnusableProjectRef
	}

	query := url.Values{}
	query.Set("path", dir)
	query.Set("recursive", "true")
	query.Set("per_page", perPage)
	if branch != "" {
		query.Set("ref", branch)
	}

	var files []string
	err := c.eachPage(ctx, "/projects/"+ref.APIIdentifier()+"/repository/tree", query, func(body []byte) error {
		var entries []treeEntryDTO
		if err := json.Unmarshal(body, &entries); err != nil {
			return zerr.Wrap(err, domain.ErrAPIParseFailed.Error())
		}
		for _, entry := range entries {
			if entry.Type == "blob" {
				files = append(files, entry.Path)
			}
		}
		return nil
	})
	if isTreeNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileListFailed.Error()), "project", ref.String())
	}
	return files, nil
}

// eachPage requests path page by page, following X-Next-Page, and hands every body to visit.
func (c *Client) eachPage(ctx context.Context, path string, query url.Values, visit func(body []byte) error) error {
	page := "1"
	for range maxPages {
		query.Set("page", page)

		body, header, err := c.get(ctx, path, query)
		if err != nil {
			return err
		}
		if err := visit(body); err != nil {
			return err
		}

		page = header.Get("X-Next-Page")
		if page == "" {
			return nil
		}
	}
	return nil
}

// RawFile returns the content of path on branch.
func (c *Client) RawFile(ctx context.Context, ref domain.ProjectRef, path, branch string) ([]byte, error) {
	if !ref.Usable() {
		return nil, domain.ErrUnusableProjectRef
	}

	query := url.Values{}
	if branch != "" {
		query.Set("ref", branch)
	}

	endpoint := "/projects/" + ref.APIIdentifier() + "/repository/files/" + url.PathEscape(path) + "/raw"
	body, _, err := c.get(ctx, endpoint, query)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrFileFetchFailed.Error()), "project", ref.String())
		return nil, zerr.With(err, "path", path)
	}
	return body, nil
}

// apiError is a non-200 answer from the API.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.message == "" {
		return "unexpected status " + strconv.Itoa(e.status)
	}
	return "unexpected status " + strconv.Itoa(e.status) + ": " + e.message
}

func isTreeNotFound(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.status == http.StatusNotFound && strings.Contains(apiErr.message, "Tree Not Found")
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, http.Header, error) {
	target := c.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}
	if c.token != "" {
		req.Header.Set("PRIVATE-TOKEN", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.Wrap(&apiError{status: resp.StatusCode, message: errorMessage(body)}, domain.ErrAPIRequestFailed.Error())
		return nil, nil, zerr.With(apiErr, "status_code", resp.StatusCode)
	}

	return body, resp.Header, nil
}

// errorMessage extracts the "message" or "error" field of an API error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message any    `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	if payload.Message != nil {
		if s, ok := payload.Message.(string); ok {
			return s
		}
		raw, _ := json.Marshal(payload.Message)
		return string(raw)
	}
	return payload.Error
}
