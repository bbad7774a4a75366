package settings

import (
	"fmt"
	"io"
)

// Check writes a health report for the settings file to w and returns the
// number of problems that would stop a link command from working. Warnings
// are reported but not counted.
func Check(w io.Writer, s *Store) (int, error) {
	problems := 0
	fmt.Fprintf(w, "Settings check (%s):\n", s.Path())

	if !s.Exists() {
		fmt.Fprintf(w, "  [MISS] settings file does not exist\n")
		fmt.Fprintf(w, "         Run 'jiralink instance add <url>' to create it\n")
		return 1, nil
	}
	fmt.Fprintf(w, "  [ OK ] settings file exists\n")

	result, err := s.Validate()
	if err != nil {
		return 0, err
	}
	if !result.Valid {
		problems++
		fmt.Fprintf(w, "  [FAIL] schema validation (%d issues)\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s\n", issue)
		}
		return problems, nil
	}
	fmt.Fprintf(w, "  [ OK ] schema validation\n")

	st, err := s.Load()
	if err != nil {
		return 0, err
	}

	if needed, err := NeedsMigration(st.Version); err != nil {
		problems++
		fmt.Fprintf(w, "  [FAIL] version: %v\n", err)
	} else if needed {
		fmt.Fprintf(w, "  [WARN] version %q will be migrated to %s on next run\n", st.Version, CurrentVersion)
	} else {
		fmt.Fprintf(w, "  [ OK ] version %s\n", st.Version)
	}

	switch n := len(st.Instances); n {
	case 0:
		problems++
		fmt.Fprintf(w, "  [MISS] no Jira instances configured\n")
	default:
		fmt.Fprintf(w, "  [ OK ] %d Jira instance(s) configured\n", n)
	}
	for i, inst := range st.Instances {
		if inst.URL == "" {
			problems++
			fmt.Fprintf(w, "  [FAIL] instance %d has an empty URL\n", i+1)
		}
	}
	switch d := st.Instances.DefaultCount(); {
	case d > 1:
		fmt.Fprintf(w, "  [WARN] %d instances are flagged default; the first one wins\n", d)
	case d == 0 && len(st.Instances) > 1:
		fmt.Fprintf(w, "  [WARN] no default instance; link-default will use the first one\n")
	}

	if st.LocalIssuePath == "" {
		fmt.Fprintf(w, "  [WARN] local_issue_path is empty; link-local will not work\n")
	} else {
		fmt.Fprintf(w, "  [ OK ] local_issue_path %s\n", st.LocalIssuePath)
	}
	if st.UseProjectFolder && st.MainFileName == "" {
		fmt.Fprintf(w, "  [WARN] main_file_name is empty while use_project_folder is on\n")
	}

	return problems, nil
}
