package wagewatch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"careersite/internal/adapters/wagewatch"
)

func TestClient_ScrapeCityWage_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"city": "austin", "hourly_min": 14.5, "hourly_max": 26.0, "source": "test",
			})
		}
	}))
	defer ts.Close()

	cl, err := wagewatch.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q, err := cl.ScrapeCityWage(ctx, "austin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q.CitySlug != "austin" || q.Hourly.Min != 14.5 || q.Hourly.Max != 26.0 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_ScrapeCityWage_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := wagewatch.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.ScrapeCityWage(ctx, "nowhere")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestClient_MalformedRange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"city": "austin", "hourly_min": 20.0, "hourly_max": 10.0,
		})
	}))
	defer ts.Close()

	cl, _ := wagewatch.New(ts.URL, "test-key", 100)
	_, err := cl.ScrapeCityWage(context.Background(), "austin")
	if err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := wagewatch.New("http://example", "", 5); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
