// Package linkfmt renders issue links. The functions are total and perform no
// escaping: identifiers and URLs are interpolated as given. Callers are
// responsible for rejecting empty configuration before calling.
package linkfmt

// BrowsePath is appended to an instance URL to reach an issue page.
const BrowsePath = "/browse/"

// FormatWebLink renders a Markdown link to the issue page on a Jira instance:
//
//	[PROJ-1](https://x.atlassian.net/browse/PROJ-1)
func FormatWebLink(baseURL, issueID string) string {
	return "[" + issueID + "](" + baseURL + BrowsePath + issueID + ")"
}

// FormatLocalLink renders a wiki link to the local note for an issue.
//
// With useProjectFolder each issue has its own folder holding mainFileName:
//
//	[[issues/PROJ-1/_Info|PROJ-1]]
//
// Without it mainFileName is appended directly to the issue id:
//
//	[[issues/PROJ-1_Info|PROJ-1]]
func FormatLocalLink(basePath, issueID, mainFileName string, useProjectFolder bool) string {
	target := basePath + "/" + issueID
	if useProjectFolder {
		target += "/" + mainFileName
	} else {
		target += mainFileName
	}
	return "[[" + target + "|" + issueID + "]]"
}
