package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jiralink/jiralink/internal/tracker"
)

// legacyVersion is assumed for documents without a version key.
const legacyVersion = "1.0.0"

// ErrUnsupportedVersion is returned when a document was written by a newer
// release than this one.
var ErrUnsupportedVersion = errors.New("settings written by a newer version")

// NeedsMigration reports whether a document at version must be upgraded.
// An empty version means a 1.x document.
func NeedsMigration(version string) (bool, error) {
	cmp, err := compareToCurrent(version)
	if err != nil {
		return false, err
	}
	if cmp > 0 {
		return false, fmt.Errorf("%w: %s > %s", ErrUnsupportedVersion, version, CurrentVersion)
	}
	return cmp < 0, nil
}

// Migrate upgrades st in place to CurrentVersion and reports whether
// anything changed. It is safe to call on an up-to-date document.
//
// From 1.x: the single jira_instance_url becomes an untitled, non-default
// entry of instances, and the local layout is pinned to <path>/<id>/_Info,
// which 1.x hard-coded.
func Migrate(st *Settings) (bool, error) {
	needed, err := NeedsMigration(st.Version)
	if err != nil {
		return false, err
	}
	if !needed {
		return false, nil
	}

	if legacy := tracker.NormalizeURL(st.LegacyInstanceURL); legacy != "" {
		if !containsURL(st.Instances, legacy) {
			st.Instances = append(tracker.Collection{{URL: legacy}}, st.Instances...)
		}
	}
	st.LegacyInstanceURL = ""

	if st.MainFileName == "" {
		st.MainFileName = DefaultMainFileName
	}
	st.UseProjectFolder = true
	st.Version = CurrentVersion
	return true, nil
}

// Migrate upgrades the stored document and saves it when it changed.
// A missing settings file is left alone.
func (s *Store) Migrate() (bool, error) {
	if !s.Exists() {
		return false, nil
	}
	st, err := s.Document()
	if err != nil {
		return false, err
	}
	changed, err := Migrate(st)
	if err != nil || !changed {
		return false, err
	}
	if err := s.Save(st); err != nil {
		return false, fmt.Errorf("saving migrated settings: %w", err)
	}
	return true, nil
}

func compareToCurrent(version string) (int, error) {
	if version == "" {
		version = legacyVersion
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing settings version %q: %w", version, err)
	}
	return v.Compare(semver.MustParse(CurrentVersion)), nil
}

func containsURL(c tracker.Collection, url string) bool {
	for _, inst := range c {
		if inst.URL == url {
			return true
		}
	}
	return false
}
