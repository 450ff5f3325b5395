package flowstate

import (
	"github.com/viant/afs/storage"
	"github.com/viant/flowstate/runtime/execution"
	"github.com/viant/flowstate/service/dao"
	"github.com/viant/flowstate/service/dao/definition"
	"github.com/viant/flowstate/service/event"
	"github.com/viant/flowstate/service/messaging"
	"github.com/viant/flowstate/service/meta"
	"github.com/viant/flowstate/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises service assembly.
type Option func(s *Service)

// WithMetaService sets the document loader.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the base URL definition documents resolve
// against.
func WithMetaBaseURL(url string) Option {
	return func(s *Service) {
		s.metaBaseURL = url
	}
}

// WithMetaFsOptions sets file system options for the document loader,
// e.g. an embed.FS.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithDefinitionDAO sets the definition DAO.
func WithDefinitionDAO(dao *definition.Service) Option {
	return func(s *Service) {
		s.runtime.definitionDAO = dao
	}
}

// WithInstanceDAO sets the instance DAO.
func WithInstanceDAO(dao dao.Service[string, execution.Instance]) Option {
	return func(s *Service) {
		s.runtime.instanceDAO = dao
	}
}

// WithEventService sets the event service.
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.runtime.eventService = service
	}
}

// WithEventVendor selects the queue vendor backing the default event
// service (memory or fs).
func WithEventVendor(vendor messaging.Vendor) Option {
	return func(s *Service) {
		s.eventVendor = vendor
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty
// the stdout exporter is used; otherwise traces are written to the
// supplied file path. Safe to call multiple times, the first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, enabling integrations such as OTLP, Jaeger or Zipkin.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
