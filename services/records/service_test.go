package records

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"ejassist-backend/lib/testutil"
	"ejassist-backend/services/records/db"

	"github.com/stretchr/testify/require"
)

// fakeFetcher blocks every fetch until released, so tests control
// exactly when a refresh completes.
type fakeFetcher struct {
	html    string
	err     error
	release chan struct{}
	calls   atomic.Int64
}

func newFakeFetcher(html string) *fakeFetcher {
	return &fakeFetcher{html: html, release: make(chan struct{})}
}

func (f *fakeFetcher) FetchRecords(ctx context.Context, identity string) (string, error) {
	f.calls.Add(1)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-f.release:
	}
	if f.err != nil {
		return "", f.err
	}
	return f.html, nil
}

func setupRecordsService(t *testing.T, fetcher Fetcher) *Service {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "records",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)

	return NewService(ServiceOptions{
		Database: result.DB,
		Fetcher:  fetcher,
		Now: func() time.Time {
			return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
		},
	})
}

func setActive(t *testing.T, svc *Service, identity string) {
	t.Helper()
	err := svc.qry.SetSetting(context.Background(), db.SetSettingParams{
		Key:   db.ActiveStudentKey,
		Value: identity,
	})
	require.NoError(t, err)
}

// waitEvent drains events until one of type E arrives.
func waitEvent[E Event](t *testing.T, events <-chan Event) E {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case e := <-events:
			if typed, ok := e.(E); ok {
				return typed
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event")
		}
	}
}

func waitNotRefreshing(t *testing.T, svc *Service, identity string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !svc.IsRefreshing(identity)
	}, 5*time.Second, 10*time.Millisecond)
}

const testIdnp = "2004012345678"

func TestSilentRefreshStoresAndPublishes(t *testing.T) {
	fetcher := newFakeFetcher("<html>fresh</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	cached, err := svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	require.Nil(t, cached, "nothing cached before the first refresh")

	started := waitEvent[RefreshStarted](t, events)
	require.Equal(t, testIdnp, started.Identity)
	require.Nil(t, started.CachedAt)

	close(fetcher.release)
	ended := waitEvent[RefreshEnded](t, events)
	require.True(t, ended.Updated)
	require.False(t, ended.Aborted)
	require.False(t, ended.Err)

	got, err := svc.GetCached(context.Background(), testIdnp)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "<html>fresh</html>", got.Html)
}

func TestSilentRefreshDedupesInflight(t *testing.T) {
	fetcher := newFakeFetcher("<html>one</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	_, err := svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	_, err = svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	require.True(t, svc.IsRefreshing(testIdnp))

	close(fetcher.release)
	waitNotRefreshing(t, svc, testIdnp)
	require.Equal(t, int64(1), fetcher.calls.Load())
}

func TestSilentRefreshServesCachedImmediately(t *testing.T) {
	fetcher := newFakeFetcher("<html>new</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	_, err := svc.Store(context.Background(), testIdnp, "<html>old</html>")
	require.NoError(t, err)

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	cached, err := svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, "<html>old</html>", cached.Html)

	started := waitEvent[RefreshStarted](t, events)
	require.NotNil(t, started.CachedAt)
	require.Equal(t, cached.CapturedAt, *started.CachedAt)

	close(fetcher.release)
	waitNotRefreshing(t, svc, testIdnp)
}

func TestStoreDiscardsNonActiveIdentity(t *testing.T) {
	svc := setupRecordsService(t, newFakeFetcher(""))
	setActive(t, svc, testIdnp)

	ts, err := svc.Store(context.Background(), "2004099999999", "<html>other</html>")
	require.NoError(t, err)
	require.Nil(t, ts)

	got, err := svc.GetCached(context.Background(), "2004099999999")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCancelRefreshAbortsAndClears(t *testing.T) {
	fetcher := newFakeFetcher("<html>late</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	_, err := svc.Store(context.Background(), testIdnp, "<html>stale</html>")
	require.NoError(t, err)

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	_, err = svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	svc.CancelRefresh(testIdnp)

	ended := waitEvent[RefreshEnded](t, events)
	require.True(t, ended.Aborted)
	require.False(t, ended.Updated)
	waitNotRefreshing(t, svc, testIdnp)

	got, err := svc.GetCached(context.Background(), testIdnp)
	require.NoError(t, err)
	require.Nil(t, got, "aborted refresh drops the cached record")
}

func TestRefreshAbortsWhenActiveIdentitySwitches(t *testing.T) {
	fetcher := newFakeFetcher("<html>late</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	_, err := svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)

	setActive(t, svc, "2004088888888")
	close(fetcher.release)

	ended := waitEvent[RefreshEnded](t, events)
	require.True(t, ended.Aborted)
	require.False(t, ended.Updated)

	got, err := svc.GetCached(context.Background(), testIdnp)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRefreshKeepsCacheOnEmptyResponse(t *testing.T) {
	fetcher := newFakeFetcher("")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	_, err := svc.Store(context.Background(), testIdnp, "<html>kept</html>")
	require.NoError(t, err)

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	_, err = svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	close(fetcher.release)

	ended := waitEvent[RefreshEnded](t, events)
	require.False(t, ended.Updated)
	require.False(t, ended.Aborted)
	require.False(t, ended.Err)

	got, err := svc.GetCached(context.Background(), testIdnp)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "<html>kept</html>", got.Html)
}

func TestRefreshReportsFetchError(t *testing.T) {
	fetcher := newFakeFetcher("")
	fetcher.err = errors.New("portal unreachable")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	_, err := svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)
	close(fetcher.release)

	ended := waitEvent[RefreshEnded](t, events)
	require.True(t, ended.Err)
	require.False(t, ended.Updated)
	require.False(t, ended.Aborted)
}

func TestRecordsWithoutCache(t *testing.T) {
	svc := setupRecordsService(t, newFakeFetcher(""))

	_, _, err := svc.Records(context.Background(), testIdnp)
	require.ErrorIs(t, err, ErrNoCachedRecord)
}

func TestRecordsParsesCachedHtml(t *testing.T) {
	svc := setupRecordsService(t, newFakeFetcher(""))
	setActive(t, svc, testIdnp)

	ts, err := svc.Store(context.Background(), testIdnp, `
		<div id="date-personale"><table>
			<tr><td>Nume:</td><td>Ceban</td></tr>
			<tr><td>Prenume:</td><td>Ion</td></tr>
		</table></div>`)
	require.NoError(t, err)
	require.NotNil(t, ts)

	grades, capturedAt, err := svc.Records(context.Background(), testIdnp)
	require.NoError(t, err)
	require.NotNil(t, capturedAt)
	require.Equal(t, ts.Unix(), capturedAt.Unix())
	require.Equal(t, "Ceban", grades.Info.Surname)
	require.Equal(t, "Ion", grades.Info.Name)
	// the fragment carries no grade panels, the semester pair is
	// synthesized
	require.Len(t, grades.CurrentGrades, 2)
}
