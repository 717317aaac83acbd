package dim

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "test-device")
	c.SetToken("test-token")
	return c
}

func TestFetchMediaInfoFlatShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/media/42/info" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-token" {
			t.Errorf("Authorization = %q, want token", got)
		}
		w.Write([]byte(`{"versions":[{"id":7,"file":"/media/a.mkv","display_name":"1080p"},{"id":8,"file":"/media/b.mkv","display_name":"720p"}]}`))
	})

	versions, err := c.FetchMediaInfo(42)
	if err != nil {
		t.Fatalf("FetchMediaInfo: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("got %d versions, want 2", len(versions))
	}
	if versions[0].ID != 7 || versions[0].DisplayName != "1080p" {
		t.Errorf("first version = %+v", versions[0])
	}
}

func TestFetchMediaInfoSeasonsShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"seasons": [
				{"episodes": [
					{"versions": [{"id": 101, "file": "/tv/s01e01.mkv"}]},
					{"versions": [{"id": 102, "file": "/tv/s01e02.mkv"}]}
				]},
				{"episodes": [
					{"versions": [{"id": 201, "file": "/tv/s02e01.mkv"}]}
				]}
			]
		}`))
	})

	versions, err := c.FetchMediaInfo(1)
	if err != nil {
		t.Fatalf("FetchMediaInfo: %v", err)
	}
	// First episode of the first season wins.
	if len(versions) != 1 || versions[0].ID != 101 {
		t.Fatalf("got %+v, want version 101", versions)
	}
}

func TestFetchMediaInfoFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error // nil means any error is fine
	}{
		{
			name:   "http error status",
			status: http.StatusInternalServerError,
			body:   `{}`,
		},
		{
			name:   "payload error field",
			status: http.StatusOK,
			body:   `{"error": "media not found"}`,
		},
		{
			name:    "empty payload",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: ErrNoVersions,
		},
		{
			name:    "seasons without episodes",
			status:  http.StatusOK,
			body:    `{"seasons": [{"episodes": []}]}`,
			wantErr: ErrNoVersions,
		},
		{
			name:    "episode without versions",
			status:  http.StatusOK,
			body:    `{"seasons": [{"episodes": [{"versions": []}]}]}`,
			wantErr: ErrNoVersions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			versions, err := c.FetchMediaInfo(1)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if versions != nil {
				t.Errorf("failed fetch returned versions %+v, want nil", versions)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchQueryEncoding(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	if _, err := c.Search(SearchFilter{Genre: "Science Fiction"}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "genre=Science+Fiction" {
		t.Errorf("query = %q, want genre url-encoded", gotQuery)
	}

	if _, err := c.Search(SearchFilter{Year: 1994}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "year=1994" {
		t.Errorf("query = %q, want year=1994", gotQuery)
	}
}
