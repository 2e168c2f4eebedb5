package gitrepo

import (
	"fmt"
	"strings"
)

// Remote identifies a GitHub repository parsed from an origin URL.
type Remote struct {
	Owner string
	Repo  string
}

// ParseRemote understands the https and ssh forms GitHub uses:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
//	ssh://git@github.com/owner/repo.git
func ParseRemote(raw string) (Remote, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Remote{}, fmt.Errorf("gitrepo: empty remote url")
	}

	var path string
	switch {
	case strings.HasPrefix(trimmed, "git@"):
		_, after, found := strings.Cut(trimmed, ":")
		if !found {
			return Remote{}, fmt.Errorf("gitrepo: malformed ssh remote %q", raw)
		}
		path = after
	case strings.HasPrefix(trimmed, "ssh://"):
		rest := strings.TrimPrefix(trimmed, "ssh://")
		_, after, found := strings.Cut(rest, "/")
		if !found {
			return Remote{}, fmt.Errorf("gitrepo: malformed ssh remote %q", raw)
		}
		path = after
	case strings.HasPrefix(trimmed, "https://"), strings.HasPrefix(trimmed, "http://"):
		rest := strings.TrimPrefix(strings.TrimPrefix(trimmed, "https://"), "http://")
		_, after, found := strings.Cut(rest, "/")
		if !found {
			return Remote{}, fmt.Errorf("gitrepo: malformed https remote %q", raw)
		}
		path = after
	default:
		return Remote{}, fmt.Errorf("gitrepo: unsupported remote url %q", raw)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Remote{}, fmt.Errorf("gitrepo: remote %q has no owner/repo", raw)
	}
	return Remote{Owner: parts[0], Repo: parts[1]}, nil
}

// RepoURL returns the browsable repository URL.
func (r Remote) RepoURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Repo)
}

// PagesURL returns the canonical GitHub Pages URL for the repository.
func (r Remote) PagesURL() string {
	if strings.EqualFold(r.Repo, fmt.Sprintf("%s.github.io", r.Owner)) {
		return fmt.Sprintf("https://%s.github.io/", strings.ToLower(r.Owner))
	}
	return fmt.Sprintf("https://%s.github.io/%s/", strings.ToLower(r.Owner), r.Repo)
}
