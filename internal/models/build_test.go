package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		buildInfo BuildInformation
		version   string
	}{
		"release": {
			buildInfo: BuildInformation{Version: "v1.2.0", Commit: "0123456789abcdef"},
			version:   "v1.2.0",
		},
		"latest_with_commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "0123456789abcdef"},
			version:   "latest-0123456",
		},
		"latest_unknown_commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "unknown"},
			version:   "latest-unknown",
		},
		"latest_short_commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "abc"},
			version:   "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.version, testCase.buildInfo.VersionString())
		})
	}
}

func Test_BuildInformation_String(t *testing.T) {
	t.Parallel()

	buildInfo := BuildInformation{Version: "v1.0.0", Commit: "abc", Date: "2024-01-02"}

	assert.Equal(t, "SMSGlobal gateway v1.0.0 built on 2024-01-02 (commit abc)", buildInfo.String())
}
