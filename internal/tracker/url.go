package tracker

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	jira "github.com/andygrunwald/go-jira/v2/cloud"
)

// ErrInvalidURL is returned by ValidateURL and CanonicalURL.
var ErrInvalidURL = errors.New("invalid Jira instance URL")

// NormalizeURL drops a single trailing slash. It is applied when a URL is
// written to settings, never when one is read back.
func NormalizeURL(raw string) string {
	return strings.TrimSuffix(raw, "/")
}

// ValidateURL checks that raw can serve as the base of a Jira instance.
func ValidateURL(raw string) error {
	_, err := CanonicalURL(raw)
	return err
}

// CanonicalURL returns the form of raw that is stored in settings. raw must
// be an absolute http(s) URL with a host and no query or fragment, since
// issue links are built by appending /browse/<id> to it. The stored value is
// the API base the Jira client derives from raw, without its trailing slash.
// No request is made.
func CanonicalURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q must not carry a query or fragment", ErrInvalidURL, raw)
	}

	client, err := jira.NewClient(raw, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	base := *client.BaseURL
	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawPath = strings.TrimSuffix(base.RawPath, "/")
	return base.String(), nil
}
