package app

import (
	"bytes"
	"context"
	"time"

	"careersite/internal/adapters/observability"
	"careersite/internal/domain"
)

// PageService runs the per-request pipeline: classify -> resolve -> derive ->
// assemble, with a read-through cache on the assembled payload. The pipeline
// itself is pure; the cache is the only side effect.
type PageService struct {
	classifier *Classifier
	resolver   *Resolver
	assembler  *Assembler
	cache      domain.Cache
	cacheTTL   time.Duration
	now        func() time.Time
}

func NewPageService(cl *Classifier, rs *Resolver, as *Assembler, cache domain.Cache, ttl time.Duration) *PageService {
	return &PageService{
		classifier: cl,
		resolver:   rs,
		assembler:  as,
		cache:      cache,
		cacheTTL:   ttl,
		now:        time.Now,
	}
}

// WithClock overrides the clock, for tests.
func (s *PageService) WithClock(now func() time.Time) *PageService {
	s.now = now
	return s
}

// Get returns the assembled page for a slug. The only failures are
// domain.ErrUnknownSlug and domain.ErrNotFound; both mean 404.
func (s *PageService) Get(ctx context.Context, slug string) (domain.PagePayload, error) {
	key := "page:" + slug
	var cached domain.PagePayload
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		observability.ObservePage(string(cached.Archetype), "ok")
		return cached, nil
	}

	c := s.classifier.Classify(slug)
	if c.Archetype == domain.ArchetypeUnknown {
		observability.ObservePage(string(domain.ArchetypeUnknown), "unknown")
		return domain.PagePayload{}, domain.ErrUnknownSlug
	}
	rp, err := s.resolver.Resolve(slug, c)
	if err != nil {
		observability.ObservePage(string(c.Archetype), "not_found")
		return domain.PagePayload{}, err
	}

	payload := s.assembler.Assemble(rp, s.now())
	_ = s.cache.Set(ctx, key, payload, int(s.cacheTTL.Seconds()))
	observability.ObservePage(string(c.Archetype), "ok")
	return payload, nil
}

// SitemapXML returns the rendered sitemap document, cached as a whole since
// it only changes when the date does.
func (s *PageService) SitemapXML(ctx context.Context, enum *Enumerator) ([]byte, error) {
	key := "sitemap:" + s.now().Format("2006-01-02")
	var cached []byte
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	var buf bytes.Buffer
	if err := enum.WriteXML(&buf, enum.Enumerate(s.now())); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
