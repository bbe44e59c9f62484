package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// A Resource is a readable scene description stream backed by a local file
// or an http(s) URL.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns the lower-cased file extension of the resource path (e.g. ".scene").
func (r *Resource) Ext() string {
	return strings.ToLower(path.Ext(r.url.Path))
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme == "http" || r.url.Scheme == "https"
}

// Open a resource. If relTo is specified and pathToResource is a relative
// path without a scheme, the path is resolved against the location of relTo.
// This lets scene files include other files that live next to them, both on
// disk and on a web server.
//
// The caller must close the returned resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	// Replace backslashes with forward slashes and try parsing as a URL
	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("resource: invalid path '%s': %s", pathToResource, err)
	}

	if resURL.Scheme == "" && relTo != nil && !filepath.IsAbs(resURL.Path) {
		resURL, err = relTo.resolve(resURL.Path)
		if err != nil {
			return nil, err
		}
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "", "file":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, fmt.Errorf("resource: could not open '%s': %s", resURL.Path, err)
		}
	case "http", "https":
		resp, err := http.Get(resURL.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Resolve a relative path against the directory containing this resource.
func (r *Resource) resolve(relPath string) (*url.URL, error) {
	if r.IsRemote() {
		return r.url.ResolveReference(&url.URL{Path: relPath}), nil
	}

	base, err := filepath.Abs(r.url.Path)
	if err != nil {
		return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", r.url.String(), err)
	}
	return &url.URL{Path: filepath.Join(filepath.Dir(base), relPath)}, nil
}

// Create a resource from a reader. Relative includes are resolved against
// the current directory.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, err := url.Parse(name)
	if err != nil {
		resURL = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}
