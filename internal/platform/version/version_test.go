package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestGet_InjectedCommitWins(t *testing.T) {
	orig := Commit
	t.Cleanup(func() { Commit = orig })
	Commit = "abc1234"

	assert.Equal(t, "abc1234", Get().Commit)
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.0.0", Commit: "abc", BuildTime: "2024-01-01", GoVersion: "go1.23"}
	assert.Equal(t, "v1.0.0 (abc, built 2024-01-01, go1.23)", info.String())
}
