package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterInput(t *testing.T) {
	assert.Equal(t, "ab", FilterInput("a/b", "/"))
	assert.Equal(t, "plain", FilterInput("plain", "/"))
	assert.Equal(t, "", FilterInput("//", "/"))
	assert.Equal(t, "ab", FilterInput(`a\/b`, `/\`))
	assert.Equal(t, "a/b", FilterInput("a/b", ""))
}

func TestBaseNameSelection(t *testing.T) {
	tests := []struct {
		name string
		want int
		base string
		ext  string
	}{
		{"photo.jpg", 5, "photo", ".jpg"},
		{"archive.tar.gz", 11, "archive.tar", ".gz"},
		{".bashrc", 7, ".bashrc", ""},
		{"..hidden.png", 8, "..hidden", ".png"},
		{"noext", 5, "noext", ""},
		{"trailing.", 8, "trailing", "."},
		{"café.jpg", 4, "café", ".jpg"},
		{"", 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseNameSelection(tt.name))
			base, ext := SplitExt(tt.name)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "retry-prompt", RetryPrompt.String())
	assert.True(t, Done.Finished())
	assert.True(t, Aborted.Finished())
	assert.False(t, Editing.Finished())
	assert.Equal(t, "State(42)", State(42).String())
}
