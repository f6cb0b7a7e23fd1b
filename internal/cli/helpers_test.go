package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// wireCourse is the catalog API's JSON shape
type wireCourse struct {
	ID            int64  `json:"id,omitempty"`
	Title         string `json:"titulo"`
	Category      string `json:"categoria"`
	DurationHours int    `json:"cargaHoraria"`
}

// catalogServer is an in-memory catalog API
type catalogServer struct {
	mu      sync.Mutex
	courses []wireCourse
	posted  []wireCourse
	fail    bool
	srv     *httptest.Server
}

func newCatalogServer(t *testing.T, n int) *catalogServer {
	t.Helper()
	s := &catalogServer{}
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
	t.Cleanup(s.srv.Close)
	return s
}

func (s *catalogServer) url() string {
	return s.srv.URL + "/api"
}

func (s *catalogServer) setFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *catalogServer) postedCourses() []wireCourse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]wireCourse(nil), s.posted...)
}

func (s *catalogServer) failing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail
}

func (s *catalogServer) list(w http.ResponseWriter, r *http.Request) {
	if s.failing() {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	q := strings.ToLower(r.URL.Query().Get("q"))

	s.mu.Lock()
	out := []wireCourse{}
	for _, c := range s.courses {
		if strings.Contains(strings.ToLower(c.Title), q) {
			out = append(out, c)
		}
	}
	s.mu.Unlock()

	_ = json.NewEncoder(w).Encode(out)
}

func (s *catalogServer) get(w http.ResponseWriter, r *http.Request) {
	if s.failing() {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
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

func (s *catalogServer) create(w http.ResponseWriter, r *http.Request) {
	if s.failing() {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
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

// execute runs the root command with an isolated config file
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "config.toml"), args...)
}

func executeWithConfig(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config", configPath))

	err := cmd.Execute()
	return out.String(), err
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not a CLI response: %v\n%s", err, out)
	}
	return resp
}
