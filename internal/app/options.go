package app

import (
	"github.com/okian/mulens/internal/domain/periodogram"
	"github.com/okian/mulens/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataDir sets the local cache root. Empty leaves the service
// remote-only.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		s.dataDir = dir
	}
}

// WithHost sets the archive address used for canonical document URLs.
func WithHost(host string) Option {
	return func(s *Service) {
		if host != "" {
			s.host = host
		}
	}
}

// WithRetriever sets the remote document retriever.
func WithRetriever(r Retriever) Option {
	return func(s *Service) {
		s.retriever = r
	}
}

// WithSigmaMin sets the uncertainty floor added in quadrature during
// cleansing.
func WithSigmaMin(sigma float64) Option {
	return func(s *Service) {
		if sigma >= 0 {
			s.sigmaMin = sigma
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPeriodogramOptions configures the spectral analyzer used by events.
func WithPeriodogramOptions(opts ...periodogram.Option) Option {
	return func(s *Service) {
		s.pgramOpts = append(s.pgramOpts, opts...)
	}
}
