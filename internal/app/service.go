// Package app provides the core service that acquires event documents and
// runs the analysis pipeline over them.
package app

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/mulens/internal/adapters/archive"
	"github.com/okian/mulens/internal/adapters/cache"
	"github.com/okian/mulens/internal/domain/model"
	"github.com/okian/mulens/internal/domain/periodogram"
	"github.com/okian/mulens/pkg/logger"
	"github.com/okian/mulens/pkg/metrics"
)

// Retriever fetches a document by its path relative to the archive root.
// Satisfied by the remote FTP client.
type Retriever interface {
	Retrieve(ctx context.Context, path string) (string, error)
}

// SaveResult reports the outcome of persisting one document during a bulk
// save run.
type SaveResult struct {
	RunID   string
	Kind    model.DocKind
	Path    string
	Outcome cache.Outcome
}

// Service resolves event documents through the cache-then-remote pipeline
// and constructs analyzable events from them. Fetches are serialized by the
// caller; the service holds no locks.
type Service struct {
	dataDir   string
	host      string
	retriever Retriever
	sigmaMin  float64
	pgram     *periodogram.Analyzer
	pgramOpts []periodogram.Option
	log       logger.Logger
}

// New constructs a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		host: archive.DefaultHost,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pgram = periodogram.New(s.pgramOpts...)
	return s
}

// Fetch resolves one document for an event. A configured cache takes
// absolute precedence over freshness: a hit performs no network I/O at all.
// On a miss the document is retrieved from the remote archive; the returned
// URL is always the canonical remote locator.
func (s *Service) Fetch(ctx context.Context, key model.EventKey, kind model.DocKind) (model.Document, error) {
	url, err := archive.FileURL(urlHost(s.host), key, kind)
	if err != nil {
		return model.Document{}, err
	}

	if s.dataDir != "" {
		if err := cache.VerifyDir(s.dataDir); err != nil {
			return model.Document{}, err
		}
		path, err := archive.CachePath(s.dataDir, key, kind)
		if err != nil {
			return model.Document{}, err
		}
		content, ok, err := cache.Read(path)
		if err != nil {
			return model.Document{}, err
		}
		if ok {
			metrics.RecordCacheHit()
			if s.log != nil {
				s.log.Debug(ctx, "cache hit", logger.String("path", path))
			}
			return model.Document{URL: url, Content: content}, nil
		}
		metrics.RecordCacheMiss()
	}

	if s.retriever == nil {
		return model.Document{}, fmt.Errorf("%w: document %s not cached", ErrNoRetriever, url)
	}

	remotePath, err := archive.RemotePath(key, kind)
	if err != nil {
		return model.Document{}, err
	}
	start := time.Now()
	content, err := s.retriever.Retrieve(ctx, remotePath)
	metrics.ObserveFetchDuration(time.Since(start).Seconds())
	if err != nil {
		return model.Document{}, err
	}
	metrics.RecordRemoteFetch()
	if s.log != nil {
		s.log.Info(ctx, "document retrieved",
			logger.String("url", url),
			logger.Int("bytes", len(content)))
	}
	return model.Document{URL: url, Content: content}, nil
}

// Save fetches and persists both documents of an event under the cache
// root. Idempotent: files already present are neither re-fetched (the cache
// hit in Fetch short-circuits the network) nor overwritten, and each
// document's report states which outcome applied.
func (s *Service) Save(ctx context.Context, key model.EventKey) ([]SaveResult, error) {
	if s.dataDir == "" {
		return nil, ErrNoDataDir
	}

	runID := uuid.NewString()
	results := make([]SaveResult, 0, 2)
	for _, kind := range []model.DocKind{model.KindPhotometry, model.KindParameters} {
		doc, err := s.Fetch(ctx, key, kind)
		if err != nil {
			return results, fmt.Errorf("save %s: %w", kind, err)
		}
		path, err := archive.CachePath(s.dataDir, key, kind)
		if err != nil {
			return results, err
		}
		outcome, err := cache.Write(path, doc.Content)
		if err != nil {
			return results, err
		}
		metrics.RecordDocumentSaved(outcome.String())
		if s.log != nil {
			s.log.Info(ctx, "document saved",
				logger.String("run_id", runID),
				logger.String("path", path),
				logger.String("outcome", outcome.String()))
		}
		results = append(results, SaveResult{RunID: runID, Kind: kind, Path: path, Outcome: outcome})
	}
	return results, nil
}

// urlHost strips the port from a host:port address for URL construction.
func urlHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.TrimSuffix(host, ":")
}
