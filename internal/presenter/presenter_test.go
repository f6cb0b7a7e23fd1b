package presenter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSetTitleAppendsSiteName(t *testing.T) {
	h := NewHead(Site{})
	h.SetTitle("Course Catalog")
	assert.Equal(t, "Course Catalog | TechNova Academy", h.Title())
}

func TestSetMetaTagsDefaults(t *testing.T) {
	h := NewHead(Site{})
	h.SetMetaTags(MetaTags{})

	want := map[string]string{
		"description":         DefaultSite.Description,
		"og:title":            "TechNova Academy - Technology Courses",
		"og:description":      DefaultSite.Description,
		"og:image":            "/assets/logo-technova.svg",
		"og:url":              "https://technova-academy.com",
		"twitter:card":        "summary_large_image",
		"twitter:title":       "TechNova Academy - Technology Courses",
		"twitter:description": DefaultSite.Description,
		"twitter:image":       "/assets/logo-technova.svg",
	}
	if diff := cmp.Diff(want, h.Tags()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestSetMetaTagsOverridesOnlyGivenFields(t *testing.T) {
	h := NewHead(Site{Name: "Acme", URL: "https://acme.test"})
	h.SetMetaTags(MetaTags{Title: "Go | Acme", URL: "https://acme.test/courses/3"})

	assert.Equal(t, "Go | Acme", h.Tag("og:title"))
	assert.Equal(t, "Go | Acme", h.Tag("twitter:title"))
	assert.Equal(t, "https://acme.test/courses/3", h.Tag("og:url"))
	assert.Equal(t, DefaultSite.Image, h.Tag("og:image"))
	assert.Equal(t, DefaultSite.Description, h.Tag("description"))
}

func TestTagsReturnsCopy(t *testing.T) {
	h := NewHead(Site{})
	h.SetMetaTags(MetaTags{})
	tags := h.Tags()
	tags["og:title"] = "mutated"
	assert.NotEqual(t, "mutated", h.Tag("og:title"))
}
