package flowstate

import (
	"github.com/viant/afs"
	"github.com/viant/flowstate/service/dao/definition"
	imemory "github.com/viant/flowstate/service/dao/instance/memory"
	"github.com/viant/flowstate/service/engine"
	"github.com/viant/flowstate/service/event"
	"github.com/viant/flowstate/service/messaging"
	"github.com/viant/flowstate/service/meta"

	"github.com/viant/afs/storage"
)

// Service assembles the engine with its DAOs, the meta loader and the
// event service. Every collaborator can be swapped through options; the
// zero configuration yields a fully in-memory engine.
type Service struct {
	runtime       *Runtime
	metaService   *meta.Service
	eventVendor   messaging.Vendor
	metaBaseURL   string
	metaFsOptions []storage.Option
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.runtime.engine = engine.New(s.runtime.definitionDAO, s.runtime.instanceDAO,
		engine.WithEventService(s.runtime.eventService))
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.runtime.definitionDAO == nil {
		s.runtime.definitionDAO = definition.New(definition.WithMetaService(s.metaService))
	}
	if s.runtime.instanceDAO == nil {
		s.runtime.instanceDAO = imemory.New()
	}
	if s.runtime.eventService == nil {
		if s.eventVendor == "" {
			s.eventVendor = messaging.VendorMemory
		}
		s.runtime.eventService, _ = event.New(s.eventVendor)
	}
}

// Runtime returns the assembled runtime.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// New creates a flowstate service with the supplied options.
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}}
	ret.init(options)
	return ret
}
