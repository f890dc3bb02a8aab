package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/market_items/internal/db"
	"github.com/Skotchmaster/market_items/internal/events"
	"github.com/Skotchmaster/market_items/internal/models"
	"github.com/Skotchmaster/market_items/internal/repo"
	"github.com/Skotchmaster/market_items/internal/tokens"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	return repo.NewGormRepo(gdb)
}

func newTestTokens() *tokens.Service {
	return tokens.NewService([]byte("test-secret"), "https://jwt-provider-domain/", "jwt-audience", time.Hour)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	topics []string
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ev, ok := event.(events.Event); ok {
		p.events = append(p.events, ev)
		p.topics = append(p.topics, topic)
	}
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type fakeIndex struct {
	mu      sync.Mutex
	docs    map[int]models.MarketItem
	failAll bool
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[int]models.MarketItem{}}
}

func (f *fakeIndex) IndexItem(_ context.Context, item models.MarketItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("index down")
	}
	f.docs[item.ID] = item
	return nil
}

func (f *fakeIndex) DeleteItem(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("index down")
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, query string, from, size int) (int64, []models.MarketItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return 0, nil, errors.New("index down")
	}
	var hits []models.MarketItem
	for id := 1; id <= len(f.docs)+100; id++ {
		doc, ok := f.docs[id]
		if ok && strings.Contains(strings.ToLower(doc.Title+" "+doc.Description), strings.ToLower(query)) {
			hits = append(hits, doc)
		}
	}
	total := int64(len(hits))
	if from > len(hits) {
		from = len(hits)
	}
	end := from + size
	if end > len(hits) {
		end = len(hits)
	}
	return total, hits[from:end], nil
}
