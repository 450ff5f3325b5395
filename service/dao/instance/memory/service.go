// Package memory provides the in-memory instance DAO.
package memory

import (
	"context"
	"sync"

	"github.com/viant/flowstate/runtime/execution"
	"github.com/viant/flowstate/service/dao"
	"github.com/viant/flowstate/service/dao/criteria"
)

// Filter parameter names understood by List.
const (
	ParamCurrentState = "CurrentState"
	ParamDefinitionID = "DefinitionID"
)

// Service implements an in-memory, thread-safe store for workflow
// instances. Saving an already stored instance merges mutable fields via
// CopyFrom so that callers holding the original pointer observe updates.
type Service struct {
	instances map[string]*execution.Instance
	mux       sync.RWMutex
}

var _ dao.Service[string, execution.Instance] = (*Service)(nil)

func (s *Service) Save(_ context.Context, instance *execution.Instance) error {
	if instance == nil {
		return dao.ErrNilEntity
	}
	if instance.ID == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if existing, ok := s.instances[instance.ID]; ok && existing != nil {
		existing.CopyFrom(instance)
	} else {
		s.instances[instance.ID] = instance
	}
	return nil
}

func (s *Service) Load(_ context.Context, id string) (*execution.Instance, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	instance, ok := s.instances[id]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return instance, nil
}

func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.instances[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.instances, id)
	return nil
}

func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*execution.Instance, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	out := make([]*execution.Instance, 0, len(s.instances))
	for _, instance := range s.instances {
		if !criteria.Match(ParamCurrentState, instance.CurrentState(), parameters) {
			continue
		}
		if !criteria.Match(ParamDefinitionID, instance.DefinitionID, parameters) {
			continue
		}
		out = append(out, instance)
	}
	return out, nil
}

// New creates an empty instance DAO.
func New() *Service {
	return &Service{instances: make(map[string]*execution.Instance)}
}
