package watch

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnoreEvent(t *testing.T) {
	own := []string{"/site/docs/sidebar.yaml"}
	tests := []struct {
		path   string
		ignore bool
	}{
		{"/site/docs/guide/intro.md", false},
		{"/site/docs/guide/.hidden.md", false},
		{"/site/docs/guide/-draft.md", false},
		{"/site/docs/guide/intro.md~", true},
		{"/site/docs/guide/.intro.md.swp", true},
		{"/site/docs/guide/.intro.md.swx", true},
		{"/site/docs/guide/.#intro.md", true},
		{"/site/docs/guide/#intro.md#", true},
		{"/site/docs/sidebar.yaml", true},
		{"/site/docs/.sidebar.yaml.tmp-12345", true},
		{"/site/docs/guide/sidebar.yaml", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.ignore, shouldIgnoreEvent(tt.path, own))
		})
	}
}

func TestTriggerOp(t *testing.T) {
	require.Equal(t, "create", triggerOp(fsnotify.Create))
	require.Equal(t, "remove", triggerOp(fsnotify.Remove))
	require.Equal(t, "rename", triggerOp(fsnotify.Rename))
	require.Equal(t, "create", triggerOp(fsnotify.Create|fsnotify.Write))
	require.Empty(t, triggerOp(fsnotify.Write))
	require.Empty(t, triggerOp(fsnotify.Chmod))
}
