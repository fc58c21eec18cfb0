package ejournal

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionCache hands out one Client per student so cookie jars never
// bleed between identities; idle clients are evicted after a while.
type SessionCache struct {
	cache *expirable.LRU[string, *Client]
	opts  ClientOptions
}

func NewSessionCache(opts ClientOptions) SessionCache {
	return SessionCache{
		cache: expirable.NewLRU[string, *Client](2048, nil, time.Minute*15),
		opts:  opts,
	}
}

func (s SessionCache) Get(idnp string) (*Client, error) {
	cached, hit := s.cache.Get(idnp)
	if hit {
		return cached, nil
	}

	client, err := NewClient(s.opts)
	if err != nil {
		return nil, err
	}
	s.cache.Add(idnp, client)
	return client, nil
}

// FetchRecords fetches through the per-identity client, so SessionCache
// can stand in wherever a fetcher is expected.
func (s SessionCache) FetchRecords(ctx context.Context, idnp string) (string, error) {
	client, err := s.Get(idnp)
	if err != nil {
		return "", err
	}
	return client.FetchRecords(ctx, idnp)
}
