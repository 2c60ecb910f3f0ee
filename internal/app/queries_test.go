package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"careersite/internal/app"
	"careersite/internal/domain"
)

type fakeCache struct {
	data map[string][]byte
	sets int
	gets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	f.gets++
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) Set(_ context.Context, key string, v any, _ int) error {
	f.sets++
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newPageService(t *testing.T, cache domain.Cache) *app.PageService {
	t.Helper()
	cat := mustCatalog(t)
	cl := app.NewClassifier(cat)
	rs := app.NewResolver(cat)
	as := app.NewAssembler("https://www.flexshifts.example")
	svc := app.NewPageService(cl, rs, as, cache, time.Minute)
	return svc.WithClock(func() time.Time {
		return time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	})
}

func TestPageService_Get_MissThenHit(t *testing.T) {
	cache := newFakeCache()
	svc := newPageService(t, cache)
	ctx := context.Background()

	first, err := svc.Get(ctx, "warehouse-jobs-philadelphia")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("sets = %d, want 1", cache.sets)
	}

	second, err := svc.Get(ctx, "warehouse-jobs-philadelphia")
	if err != nil {
		t.Fatalf("get (cached): %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("sets after hit = %d, want still 1", cache.sets)
	}
	if first.Title != second.Title || first.Slug != second.Slug {
		t.Fatalf("cached payload differs: %q vs %q", first.Title, second.Title)
	}
	if len(first.Sections) != len(second.Sections) {
		t.Fatalf("cached payload lost sections: %d vs %d", len(first.Sections), len(second.Sections))
	}
}

func TestPageService_Get_UnknownSlug(t *testing.T) {
	cache := newFakeCache()
	svc := newPageService(t, cache)

	_, err := svc.Get(context.Background(), "definitely-not-a-page")
	if !errors.Is(err, domain.ErrUnknownSlug) {
		t.Fatalf("err = %v, want ErrUnknownSlug", err)
	}
	if cache.sets != 0 {
		t.Fatal("failed lookups must not be cached")
	}
}

func TestPageService_Get_NotFound(t *testing.T) {
	cache := newFakeCache()
	svc := newPageService(t, cache)

	_, err := svc.Get(context.Background(), "warehouse-jobs-atlantis")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if cache.sets != 0 {
		t.Fatal("failed lookups must not be cached")
	}
}

func TestPageService_SitemapXML_Cached(t *testing.T) {
	cache := newFakeCache()
	svc := newPageService(t, cache)
	cat := mustCatalog(t)
	enum := app.NewEnumerator(cat, "https://www.flexshifts.example")
	ctx := context.Background()

	first, err := svc.SitemapXML(ctx, enum)
	if err != nil {
		t.Fatalf("sitemap: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("empty sitemap")
	}
	second, err := svc.SitemapXML(ctx, enum)
	if err != nil {
		t.Fatalf("sitemap (cached): %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("sets = %d, want 1", cache.sets)
	}
	if string(first) != string(second) {
		t.Fatal("cached sitemap differs from rendered one")
	}
}
