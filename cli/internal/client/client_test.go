package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/healthtech/healthtech/pkg/types"
)

func TestSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/readings" {
			t.Errorf("request: got %s %s", r.Method, r.URL.Path)
		}
		var got types.Reading
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Submission{ //nolint:errcheck
			Record:   types.HealthRecord{Name: got.Name, HealthScore: 100},
			Insights: []string{"BMI: 22.86 → Normal"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	sub, err := c.Submit(context.Background(), types.Reading{Name: "Ada"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.Record.Name != "Ada" || sub.Record.HealthScore != 100 {
		t.Errorf("record: got %+v", sub.Record)
	}
}

func TestSubmit_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"invalid reading","fields":{"age":"must be at least 1"}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).Submit(context.Background(), types.Reading{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Fields["age"] == "" {
		t.Errorf("APIError: got %+v", apiErr)
	}
	if !strings.Contains(err.Error(), "age must be at least 1") {
		t.Errorf("Error(): got %q", err.Error())
	}
}

func TestSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.Snapshot{ //nolint:errcheck
			Records: []types.HealthRecord{{Name: "a"}, {Name: "b"}},
			Daily:   []types.DailyCount{{Date: "2026-01-01", TotalTests: 2}},
		})
	}))
	defer srv.Close()

	snap, err := New(srv.URL, time.Second).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Records) != 2 || snap.Daily[0].TotalTests != 2 {
		t.Errorf("snapshot: got %+v", snap)
	}
}

func TestSnapshot_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := New(url, time.Second).Snapshot(context.Background()); err == nil {
		t.Fatal("expected error from a closed server")
	}
}

func TestSnapshot_PlainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Snapshot(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadGateway {
		t.Fatalf("got %v, want 502 APIError", err)
	}
}
