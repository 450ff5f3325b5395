// Package meta loads YAML documents (definitions, configuration) from
// any location supported by the viant/afs abstract file system: local
// files, embedded assets, object storage and so on.
package meta

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Service resolves document URLs against an optional base URL and
// decodes their YAML payload.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service. baseURL may be empty, in which case every
// Load call must supply an absolute URL.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Load downloads the document at URL, expands ${env.KEY} references and
// unmarshals the YAML payload into target.
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	location := s.resolve(URL)
	data, err := s.fs.DownloadWithURL(ctx, location, s.options...)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", location, err)
	}
	expanded := ExpandEnv(string(data))
	if err = yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return nil
}

// resolve joins URL with the base URL unless URL already carries a
// scheme or an absolute path.
func (s *Service) resolve(URL string) string {
	if s.baseURL == "" || strings.HasPrefix(URL, "/") {
		return URL
	}
	if parsed, err := url.Parse(URL); err == nil && parsed.Scheme != "" {
		return URL
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + URL
}
