package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"coursecat/internal/domain"
)

const (
	DefaultBaseURL  = "http://localhost:8080/api"
	RequestIDHeader = "X-Request-ID"
)

// Lister fetches the (optionally filtered) course collection
type Lister interface {
	List(ctx context.Context, query string) ([]domain.Course, error)
}

// Getter fetches a single course by id
type Getter interface {
	Get(ctx context.Context, id int64) (domain.Course, error)
}

// Creator persists a new course and returns the stored record
type Creator interface {
	Create(ctx context.Context, course domain.Course) (domain.Course, error)
}

// Gateway is the full remote catalog surface
type Gateway interface {
	Lister
	Getter
	Creator
}

// courseDTO is the JSON shape the catalog API speaks
type courseDTO struct {
	ID            int64  `json:"id,omitempty"`
	Title         string `json:"titulo"`
	Category      string `json:"categoria"`
	DurationHours int    `json:"cargaHoraria"`
}

func toDTO(c domain.Course) courseDTO {
	return courseDTO{ID: c.ID, Title: c.Title, Category: c.Category, DurationHours: c.DurationHours}
}

func (d courseDTO) course() domain.Course {
	return domain.Course{ID: d.ID, Title: d.Title, Category: d.Category, DurationHours: d.DurationHours}
}

// Client talks to the catalog API over HTTP/JSON
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a per-request timeout on the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger attaches a logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log.With().Str("component", "gateway").Logger() }
}

// New creates a client rooted at baseURL, e.g. "http://localhost:8080/api"
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns every course, or those matching query when it is non-empty
func (c *Client) List(ctx context.Context, query string) ([]domain.Course, error) {
	endpoint := c.baseURL + "/courses"
	if query != "" {
		endpoint += "?q=" + url.QueryEscape(query)
	}

	var dtos []courseDTO
	if err := c.do(ctx, "list", http.MethodGet, endpoint, nil, &dtos); err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(dtos))
	for _, d := range dtos {
		courses = append(courses, d.course())
	}
	return courses, nil
}

// Get returns the course with the given id
func (c *Client) Get(ctx context.Context, id int64) (domain.Course, error) {
	endpoint := c.baseURL + "/courses/" + strconv.FormatInt(id, 10)

	var dto courseDTO
	if err := c.do(ctx, "get", http.MethodGet, endpoint, nil, &dto); err != nil {
		return domain.Course{}, err
	}
	return dto.course(), nil
}

// Create posts a new course; the id of the argument is never sent
func (c *Client) Create(ctx context.Context, course domain.Course) (domain.Course, error) {
	dto := toDTO(course)
	dto.ID = 0

	body, err := json.Marshal(dto)
	if err != nil {
		return domain.Course{}, &domain.TransportError{Op: "create", Err: fmt.Errorf("failed to encode course: %w", err)}
	}

	var created courseDTO
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/courses", body, &created); err != nil {
		return domain.Course{}, err
	}
	return created.course(), nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("op", op).Str("request_id", requestID).Msg("request failed")
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.TransportError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
