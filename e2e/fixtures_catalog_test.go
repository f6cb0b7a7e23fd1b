//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// wireCourse is the catalog API's JSON shape
type wireCourse struct {
	ID            int64  `json:"id,omitempty"`
	Title         string `json:"titulo"`
	Category      string `json:"categoria"`
	DurationHours int    `json:"cargaHoraria"`
}

// CatalogServer is an in-memory catalog API the app under test talks to
type CatalogServer struct {
	mu      sync.Mutex
	courses []wireCourse
	posted  []wireCourse
	queries []string
	srv     *httptest.Server
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// StartCatalog serves n courses titled "Course 01".."Course n"
func (tf *TUITestFramework) StartCatalog(n int) *CatalogServer {
	s := &CatalogServer{}
	for i := 1; i <= n; i++ {
		s.courses = append(s.courses, wireCourse{
			ID:            int64(i),
			Title:         fmt.Sprintf("Course %02d", i),
			Category:      "Backend",
			DurationHours: i,
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/courses", s.list)
	mux.HandleFunc("GET /api/courses/{id}", s.get)
	mux.HandleFunc("POST /api/courses", s.create)
	s.srv = httptest.NewServer(mux)
	tf.t.Cleanup(s.srv.Close)
	return s
}

// URL is the API root to pass as --api-url
func (s *CatalogServer) URL() string {
	return s.srv.URL + "/api"
}

// Posted returns the bodies of every create request
func (s *CatalogServer) Posted() []wireCourse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]wireCourse(nil), s.posted...)
}

// Queries returns every list query in arrival order
func (s *CatalogServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *CatalogServer) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	s.mu.Lock()
	s.queries = append(s.queries, q)
	out := []wireCourse{}
	for _, c := range s.courses {
		if strings.Contains(strings.ToLower(c.Title), strings.ToLower(q)) {
			out = append(out, c)
		}
	}
	s.mu.Unlock()

	_ = json.NewEncoder(w).Encode(out)
}

func (s *CatalogServer) get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			_ = json.NewEncoder(w).Encode(c)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *CatalogServer) create(w http.ResponseWriter, r *http.Request) {
	var c wireCourse
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.posted = append(s.posted, c)
	c.ID = int64(len(s.courses) + 1)
	s.courses = append(s.courses, c)
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// StartCatalogApp starts a catalog of n courses and the TUI pointed at it
func (tf *TUITestFramework) StartCatalogApp(n int, args ...string) (*CatalogServer, error) {
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		return nil, err
	}
	catalog := tf.StartCatalog(n)

	base := []string{
		"--config", filepath.Join(workspace, "config.toml"),
		"--api-url", catalog.URL(),
	}
	return catalog, tf.StartApp(append(base, args...)...)
}

// Mark returns the current length of the normalized output
func (tf *TUITestFramework) Mark() int {
	tf.t.Helper()
	return len(tf.SnapshotPlain())
}

// SeePlainSince waits for text to appear in output produced after mark
func (tf *TUITestFramework) SeePlainSince(mark int, text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		if mark > len(plain) {
			mark = 0
		}
		return strings.Contains(plain[mark:], text)
	}, 3*time.Second)
}
