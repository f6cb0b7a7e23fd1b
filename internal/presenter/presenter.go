package presenter

import (
	"sync"
)

// Site holds the branding the head defaults are derived from
type Site struct {
	Name        string
	URL         string
	Description string
	Image       string
}

// DefaultSite is the branding used when configuration supplies none
var DefaultSite = Site{
	Name:        "TechNova Academy",
	URL:         "https://technova-academy.com",
	Description: "Learn technology with the best online courses. Development, programming, design and more.",
	Image:       "/assets/logo-technova.svg",
}

// MetaTags is a partial set of page metadata; empty fields take the site defaults
type MetaTags struct {
	Title       string
	Description string
	Image       string
	URL         string
}

// Notifier receives page title and metadata updates from the controllers
type Notifier interface {
	SetTitle(title string)
	SetMetaTags(tags MetaTags)
}

// Head is the in-memory document head the TUI renders from.
// Safe for concurrent use.
type Head struct {
	mu    sync.RWMutex
	site  Site
	title string
	tags  map[string]string
}

// NewHead creates a head for site; zero fields of site fall back to DefaultSite
func NewHead(site Site) *Head {
	if site.Name == "" {
		site.Name = DefaultSite.Name
	}
	if site.URL == "" {
		site.URL = DefaultSite.URL
	}
	if site.Description == "" {
		site.Description = DefaultSite.Description
	}
	if site.Image == "" {
		site.Image = DefaultSite.Image
	}
	return &Head{site: site, tags: make(map[string]string)}
}

// Site returns the branding the head was built with
func (h *Head) Site() Site {
	return h.site
}

// SetTitle sets the window title to "<title> | <site name>"
func (h *Head) SetTitle(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.title = title + " | " + h.site.Name
}

// SetMetaTags merges tags over the site defaults and expands them into
// the description, Open Graph and Twitter card entries.
func (h *Head) SetMetaTags(tags MetaTags) {
	merged := MetaTags{
		Title:       h.site.Name + " - Technology Courses",
		Description: h.site.Description,
		Image:       h.site.Image,
		URL:         h.site.URL,
	}
	if tags.Title != "" {
		merged.Title = tags.Title
	}
	if tags.Description != "" {
		merged.Description = tags.Description
	}
	if tags.Image != "" {
		merged.Image = tags.Image
	}
	if tags.URL != "" {
		merged.URL = tags.URL
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.tags["description"] = merged.Description

	h.tags["og:title"] = merged.Title
	h.tags["og:description"] = merged.Description
	h.tags["og:image"] = merged.Image
	h.tags["og:url"] = merged.URL

	h.tags["twitter:card"] = "summary_large_image"
	h.tags["twitter:title"] = merged.Title
	h.tags["twitter:description"] = merged.Description
	h.tags["twitter:image"] = merged.Image
}

// Title returns the current window title
func (h *Head) Title() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.title
}

// Tag returns a single meta entry
func (h *Head) Tag(name string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tags[name]
}

// Tags returns a copy of every meta entry set so far
func (h *Head) Tags() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]string, len(h.tags))
	for k, v := range h.tags {
		out[k] = v
	}
	return out
}

// Discard is a Notifier that drops every update
type Discard struct{}

func (Discard) SetTitle(string)      {}
func (Discard) SetMetaTags(MetaTags) {}
