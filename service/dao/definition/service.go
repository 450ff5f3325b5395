// Package definition stores workflow definitions and decodes them from
// YAML documents, either supplied inline or loaded from any URL the meta
// service can reach (file, embed, s3, ...).
package definition

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/flowstate/model"
	"github.com/viant/flowstate/service/dao"
	"github.com/viant/flowstate/service/dao/store"
	"github.com/viant/flowstate/service/meta"
	"gopkg.in/yaml.v3"
)

// Service is the definition DAO. Definitions are immutable once saved;
// the engine enforces duplicate rejection, the DAO itself stays dumb.
type Service struct {
	*store.MemoryStore[string, model.Definition]
	metaService *meta.Service
}

var _ dao.Service[string, model.Definition] = (*Service)(nil)

// New creates a definition DAO.
func New(options ...Option) *Service {
	ret := &Service{
		MemoryStore: store.NewMemoryStore[string, model.Definition](func(d *model.Definition) string {
			return d.ID
		}),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// DecodeYAML decodes a definition from a YAML document.
func (s *Service) DecodeYAML(encoded []byte) (*model.Definition, error) {
	definition := &model.Definition{}
	if err := yaml.Unmarshal(encoded, definition); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return definition, nil
}

// LoadURL loads a definition document from the supplied URL through the
// meta service. The definition is decoded but not saved; registration
// goes through the engine so that loaded documents pass the same
// validation as API-supplied ones.
func (s *Service) LoadURL(ctx context.Context, URL string) (*model.Definition, error) {
	if s.metaService == nil {
		return nil, fmt.Errorf("meta service not configured")
	}
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	definition := &model.Definition{}
	if err := s.metaService.Load(ctx, URL, definition); err != nil {
		return nil, fmt.Errorf("failed to load definition from %s: %w", URL, err)
	}
	definition.Source = &model.Source{URL: URL}
	if definition.ID == "" {
		definition.ID = nameFromURL(URL)
	}
	return definition, nil
}

// nameFromURL extracts a definition id from a URL (file name without
// extension).
func nameFromURL(URL string) string {
	base := filepath.Base(URL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Option customises the definition DAO.
type Option func(s *Service)

// WithMetaService sets the loader used by LoadURL.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}
