// Package records caches student record pages and coordinates their
// refresh. Reads are always served from the cache; refreshes run in the
// background and announce their outcome over the event broker.
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ejassist-backend/lib/timezone"
	"ejassist-backend/services/records/db"
	"ejassist-backend/services/records/parser"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/records")

// ErrNoCachedRecord is returned by Records when no refresh has ever
// stored data for the identity.
var ErrNoCachedRecord = errors.New("no cached record for student")

const storeTimeout = 15 * time.Second

// Fetcher pulls a student's raw record page from the portal.
type Fetcher interface {
	FetchRecords(ctx context.Context, identity string) (string, error)
}

type Service struct {
	qry     *db.Queries
	fetcher Fetcher
	broker  *Broker
	now     func() time.Time

	mu       sync.Mutex
	inflight map[string]chan struct{}
	cancels  map[string]context.CancelFunc
}

type ServiceOptions struct {
	Database *sql.DB
	Fetcher  Fetcher
	// test seam for capture timestamps, timezone.Now when nil
	Now func() time.Time
}

func NewService(options ServiceOptions) *Service {
	now := options.Now
	if now == nil {
		now = timezone.Now
	}
	return &Service{
		qry:      db.New(options.Database),
		fetcher:  options.Fetcher,
		broker:   NewBroker(),
		now:      now,
		inflight: map[string]chan struct{}{},
		cancels:  map[string]context.CancelFunc{},
	}
}

// Subscribe registers a listener for refresh and cache events.
func (s *Service) Subscribe() (<-chan Event, func()) {
	return s.broker.Subscribe()
}

type CachedRecord struct {
	Html       string
	CapturedAt time.Time
}

// GetCached returns the stored record page for the identity, nil when
// none has been stored yet.
func (s *Service) GetCached(ctx context.Context, identity string) (*CachedRecord, error) {
	row, err := s.qry.GetRecordCache(ctx, identity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading record cache: %w", err)
	}
	return &CachedRecord{
		Html:       row.Html,
		CapturedAt: time.Unix(row.CapturedAt, 0).In(timezone.Location),
	}, nil
}

// activeIdentity is the student the app is currently signed in as,
// empty when never set.
func (s *Service) activeIdentity(ctx context.Context) string {
	identity, err := s.qry.GetSetting(ctx, db.ActiveStudentKey)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to read active student", "err", err)
		return ""
	}
	return identity
}

// Store writes a fetched record page to the cache. a write for anyone
// other than the active identity is discarded: a late fetch result must
// never overwrite the record of a student the app switched to. returns
// the capture timestamp, nil when the write was discarded.
func (s *Service) Store(ctx context.Context, identity string, html string) (*time.Time, error) {
	ctx, span := tracer.Start(ctx, "records.Store")
	defer span.End()
	span.SetAttributes(attribute.String("student.identity", identity))

	if active := s.activeIdentity(ctx); active != "" && active != identity {
		slog.WarnContext(
			ctx, "discarding record write for non-active student",
			"identity", identity, "active", active,
		)
		return nil, nil
	}

	capturedAt := s.now().In(timezone.Location)
	err := s.qry.UpsertRecordCache(ctx, db.UpsertRecordCacheParams{
		StudentID:  identity,
		Html:       html,
		CapturedAt: capturedAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("storing record cache: %w", err)
	}

	s.broker.publish(DataUpdated{Identity: identity})
	return &capturedAt, nil
}

// ClearCache drops the stored record for the identity.
func (s *Service) ClearCache(ctx context.Context, identity string) error {
	if err := s.qry.DeleteRecordCache(ctx, identity); err != nil {
		return fmt.Errorf("clearing record cache: %w", err)
	}
	s.broker.publish(DataUpdated{Identity: identity})
	return nil
}

// IsRefreshing reports whether a refresh is in flight for the identity.
func (s *Service) IsRefreshing(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[identity]
	return ok
}

// CancelRefresh aborts the in-flight refresh for the identity, if any.
func (s *Service) CancelRefresh(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.cancels[identity]; ok {
		cancel()
	}
}

// CancelAllRefreshes aborts every in-flight refresh. used when the app
// switches to a different student.
func (s *Service) CancelAllRefreshes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.cancels {
		cancel()
	}
}

// SilentRefresh returns the cached record immediately and refreshes it
// in the background. when a refresh for the identity is already in
// flight no second fetch is started. the refresh outlives ctx: it is
// bound to its own cancel token, stopped through CancelRefresh.
func (s *Service) SilentRefresh(ctx context.Context, identity string) (*CachedRecord, error) {
	cached, err := s.GetCached(ctx, identity)
	if err != nil {
		return nil, err
	}

	var cachedAt *time.Time
	if cached != nil {
		cachedAt = &cached.CapturedAt
	}
	s.broker.publish(RefreshStarted{Identity: identity, CachedAt: cachedAt})

	s.mu.Lock()
	if _, ok := s.inflight[identity]; ok {
		s.mu.Unlock()
		slog.DebugContext(ctx, "refresh already in flight", "identity", identity)
		return cached, nil
	}
	// a stale token for this identity has no task behind it anymore,
	// but fire it anyway before replacing it
	if stale, ok := s.cancels[identity]; ok {
		stale()
	}
	done := make(chan struct{})
	tokenCtx, cancel := context.WithCancel(context.Background())
	s.inflight[identity] = done
	s.cancels[identity] = cancel
	s.mu.Unlock()

	go s.refresh(tokenCtx, identity, done)
	return cached, nil
}

func (s *Service) refresh(ctx context.Context, identity string, done chan struct{}) {
	start := time.Now()
	ended := RefreshEnded{Identity: identity}
	defer func() {
		s.mu.Lock()
		delete(s.inflight, identity)
		delete(s.cancels, identity)
		s.mu.Unlock()
		close(done)

		ended.Duration = time.Since(start)
		s.broker.publish(ended)
	}()

	spanCtx, span := tracer.Start(ctx, "records.refresh")
	defer span.End()
	span.SetAttributes(attribute.String("student.identity", identity))

	html, err := s.fetcher.FetchRecords(spanCtx, identity)

	// storage must not inherit the refresh token: a cancelled token
	// still has its abort cleanup to write
	storeCtx, cancelStore := context.WithTimeout(context.Background(), storeTimeout)
	defer cancelStore()

	active := s.activeIdentity(storeCtx)
	switch {
	case ctx.Err() != nil || (active != "" && active != identity):
		ended.Aborted = true
		if clearErr := s.ClearCache(storeCtx, identity); clearErr != nil {
			slog.Warn("failed to clear cache for aborted refresh", "identity", identity, "err", clearErr)
		}
	case err != nil:
		ended.Err = true
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("record refresh failed", "identity", identity, "err", err)
	case html == "":
		// nothing usable came back, keep serving the cached record
		slog.Warn("portal returned an empty record page", "identity", identity)
	default:
		ts, storeErr := s.Store(storeCtx, identity, html)
		if storeErr != nil {
			ended.Err = true
			span.RecordError(storeErr)
			span.SetStatus(codes.Error, storeErr.Error())
			return
		}
		ended.Updated = ts != nil
	}
}

// Records returns the parsed grades for the identity from the cache,
// along with when they were captured. ErrNoCachedRecord when nothing
// has been stored yet.
func (s *Service) Records(ctx context.Context, identity string) (parser.StudentGrades, *time.Time, error) {
	ctx, span := tracer.Start(ctx, "records.Records")
	defer span.End()

	cached, err := s.GetCached(ctx, identity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return parser.StudentGrades{}, nil, err
	}
	if cached == nil {
		return parser.StudentGrades{}, nil, ErrNoCachedRecord
	}
	return parser.ParseStudentGradesData(cached.Html), &cached.CapturedAt, nil
}
