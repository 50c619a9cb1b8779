package models

import "fmt"

type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

// VersionString returns the version, suffixed with the short
// commit hash for the latest builds.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	const commitShortHashLength = 7
	if len(b.Commit) < commitShortHashLength {
		return "latest"
	}
	return b.Version + "-" + b.Commit[:commitShortHashLength]
}

func (b BuildInformation) String() string {
	return fmt.Sprintf("SMSGlobal gateway %s built on %s (commit %s)",
		b.VersionString(), b.Date, b.Commit)
}
