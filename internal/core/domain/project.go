package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Project is a source-control project as returned by a project search.
type Project struct {
	ID                int64
	Name              string
	PathWithNamespace string
	WebURL            string
	CloneURL          string
	DefaultBranch     string
}

// Ref converts the project into the reference persisted for an application.
func (p Project) Ref() ProjectRef {
	return ProjectRef{
		ID:       p.ID,
		Path:     p.PathWithNamespace,
		WebURL:   p.WebURL,
		CloneURL: p.CloneURL,
	}
}

// Label is the human readable line shown when an operator must pick between projects.
func (p Project) Label() string {
	if p.WebURL == "" {
		return p.PathWithNamespace + " (id " + strconv.FormatInt(p.ID, 10) + ")"
	}
	return p.PathWithNamespace + " (id " + strconv.FormatInt(p.ID, 10) + ", " + p.WebURL + ")"
}

// ProjectRef is the Application Record value: the project an application is built from.
// It is always persisted as an object, never as a bare string.
type ProjectRef struct {
	ID       int64  `json:"id,omitempty"`
	Path     string `json:"path_with_namespace,omitempty"`
	WebURL   string `json:"web_url,omitempty"`
	CloneURL string `json:"clone_url,omitempty"`
}

// Usable reports whether the reference identifies a project.
func (r ProjectRef) Usable() bool {
	return r.ID > 0 || r.Path != ""
}

// APIIdentifier returns the identifier used in API paths: the numeric id when known,
// otherwise the URL-escaped namespace path.
func (r ProjectRef) APIIdentifier() string {
	if r.ID > 0 {
		return strconv.FormatInt(r.ID, 10)
	}
	return url.PathEscape(r.Path)
}

// String returns the most descriptive form of the reference.
func (r ProjectRef) String() string {
	switch {
	case r.Path != "":
		return r.Path
	case r.ID > 0:
		return strconv.FormatInt(r.ID, 10)
	default:
		return r.WebURL
	}
}

// ParseProjectRef turns operator input into a ProjectRef.
// A number becomes an id, an http(s) or scp-style git URL becomes a namespace path,
// anything else is taken as a namespace path verbatim.
func ParseProjectRef(input string) ProjectRef {
	input = strings.TrimSpace(input)
	if input == "" {
		return ProjectRef{}
	}

	if id, err := strconv.ParseInt(input, 10, 64); err == nil && id > 0 {
		return ProjectRef{ID: id}
	}

	if strings.Contains(input, "://") {
		u, err := url.Parse(input)
		if err == nil && u.Host != "" {
			path := strings.Trim(strings.TrimSuffix(u.Path, ".git"), "/")
			return ProjectRef{
				Path:     path,
				WebURL:   u.Scheme + "://" + u.Host + "/" + path,
				CloneURL: input,
			}
		}
	}

	// scp-like syntax: git@host:group/project.git
	if at := strings.Index(input, "@"); at >= 0 {
		if _, rest, ok := strings.Cut(input[at+1:], ":"); ok {
			return ProjectRef{
				Path:     strings.Trim(strings.TrimSuffix(rest, ".git"), "/"),
				CloneURL: input,
			}
		}
	}

	return ProjectRef{Path: strings.Trim(strings.TrimSuffix(input, ".git"), "/")}
}
