package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pathed/internal/model"
)

func TestDetectShell(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/bin/bash", "bash"},
		{"/usr/bin/zsh", "zsh"},
		{"/usr/local/bin/fish", "fish"},
		{"fish", "fish"},
		{"/bin/sh", "bash"},
		{"", "bash"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectShell(tc.path).Name(), "path %q", tc.path)
	}
}

func TestCommandBash(t *testing.T) {
	list := model.Parse("/usr/bin:/usr/local/bin:/opt/tool/bin")
	got := Command(&BashShell{}, "PATH", list, true)
	assert.Equal(t, `export PATH="/usr/bin:/usr/local/bin:/opt/tool/bin"`, got)
}

func TestCommandZshMatchesBashSyntax(t *testing.T) {
	list := model.Parse("/usr/bin")
	assert.Equal(t,
		Command(&BashShell{}, "PATH", list, true),
		Command(&ZshShell{}, "PATH", list, true))
}

func TestCommandFish(t *testing.T) {
	list := model.Parse("/usr/bin:/opt/tool/bin")
	got := Command(&FishShell{}, "PATH", list, true)
	assert.Equal(t, `set -x PATH "/usr/bin:/opt/tool/bin"`, got)
}

func TestCommandCustomVariable(t *testing.T) {
	list := model.Parse("/usr/share/man")
	got := Command(&BashShell{}, "MANPATH", list, true)
	assert.Equal(t, `export MANPATH="/usr/share/man"`, got)
}

func TestCommandCleanSessionProducesNothing(t *testing.T) {
	list := model.Parse("/usr/bin:/bin")
	assert.Empty(t, Command(&BashShell{}, "PATH", list, false))
}

func TestCommandEmptyList(t *testing.T) {
	list := model.Parse("")
	assert.Equal(t, `export PATH=""`, Command(&BashShell{}, "PATH", list, true))
}
