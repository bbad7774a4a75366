package tracker

import (
	"errors"
	"reflect"
	"testing"
)

func TestDisplayTitles(t *testing.T) {
	c := Collection{
		{URL: "https://one.example"},
		{Title: "Work", URL: "https://work.example"},
		{URL: "https://two.example"},
	}
	want := []string{"Instance 0", "Work", "Instance 1"}
	if got := c.DisplayTitles(); !reflect.DeepEqual(got, want) {
		t.Errorf("DisplayTitles() = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	c := Collection{
		{Title: "Work", URL: "https://corp.atlassian.net"},
		{Title: "Home", URL: "https://me.atlassian.net"},
		{URL: "https://oss.example.org"},
	}

	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{0, 1, 2}},
		{"work", []int{0}},
		{"ATLASSIAN", []int{0, 1}},
		{"instance 0", []int{2}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := c.Filter(tt.query); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := (Instance{Title: "Work", URL: "https://x"}).Label(); got != "Work" {
		t.Errorf("Label() = %q", got)
	}
	if got := (Instance{URL: "https://x"}).Label(); got != "https://x" {
		t.Errorf("Label() = %q", got)
	}
}

func TestWithDefault(t *testing.T) {
	c := Collection{{URL: "a", IsDefault: true}, {URL: "b"}, {URL: "c", IsDefault: true}}
	got := c.WithDefault(1)

	if got.DefaultCount() != 1 || !got[1].IsDefault {
		t.Errorf("WithDefault(1) = %+v", got)
	}
	if c.DefaultCount() != 2 {
		t.Error("WithDefault mutated the receiver")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := map[string]string{
		"https://x.atlassian.net/":  "https://x.atlassian.net",
		"https://x.atlassian.net":   "https://x.atlassian.net",
		"https://x.atlassian.net//": "https://x.atlassian.net/",
		"":                          "",
	}
	for in, want := range tests {
		if got := NormalizeURL(in); got != want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://x.atlassian.net", false},
		{"http://jira.internal:8080/jira", false},
		{"", true},
		{"x.atlassian.net", true},
		{"ftp://x.atlassian.net", true},
		{"https://", true},
		{"https://x.atlassian.net?q=1", true},
		{"https://x.atlassian.net/#top", true},
		{"https://x.atlassian.net?", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("ValidateURL(%q) = %v, want ErrInvalidURL", tt.url, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateURL(%q) unexpected error: %v", tt.url, err)
			}
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := map[string]string{
		"https://x.atlassian.net":         "https://x.atlassian.net",
		"https://x.atlassian.net/":        "https://x.atlassian.net",
		"HTTPS://x.atlassian.net/":        "https://x.atlassian.net",
		"http://jira.internal:8080/jira/": "http://jira.internal:8080/jira",
		"https://corp.example/my jira":    "https://corp.example/my%20jira",
	}
	for in, want := range tests {
		got, err := CanonicalURL(in)
		if err != nil {
			t.Errorf("CanonicalURL(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("CanonicalURL(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := CanonicalURL("https://x.atlassian.net?q=1#f"); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("CanonicalURL with query = %v, want ErrInvalidURL", err)
	}
}
