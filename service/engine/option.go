package engine

import (
	"github.com/viant/flowstate/service/event"
)

type Option func(s *Service)

// WithEventService enables lifecycle event publishing.
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.events = service
	}
}
