package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSidebarError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SidebarError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("permission denied"), CategoryFileSystem, SeverityFatal, "docs tree could not be read"),
			expected: "filesystem (fatal): docs tree could not be read: permission denied",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if result := test.err.Error(); result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestSidebarError_WithContext(t *testing.T) {
	err := New(CategoryOutput, SeverityError, "write failed").
		WithContext("output", "sidebar.json").
		WithContext("format", "json")

	require.Equal(t, "sidebar.json", err.Context["output"])
	require.Equal(t, "json", err.Context["format"])
}

func TestCategoryLookupFollowsWrapping(t *testing.T) {
	inner := DocsRootUnreadable("/docs", fmt.Errorf("boom"))
	wrapped := fmt.Errorf("build: %w", inner)

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"direct match", inner, CategoryFileSystem, true},
		{"wrapped match", wrapped, CategoryFileSystem, true},
		{"other category", inner, CategoryConfig, false},
		{"plain error", fmt.Errorf("plain"), CategoryFileSystem, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, IsCategory(test.err, test.category))
		})
	}

	require.Equal(t, CategoryFileSystem, GetCategory(wrapped))
	require.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/sidebar.yaml")
		require.Equal(t, CategoryConfig, err.Category)
		require.Equal(t, SeverityFatal, err.Severity)
		require.Equal(t, "/path/to/sidebar.yaml", err.Context["path"])
	})

	t.Run("DocsRootUnreadable", func(t *testing.T) {
		cause := fmt.Errorf("no such directory")
		err := DocsRootUnreadable("/srv/docs", cause)
		require.Equal(t, CategoryFileSystem, err.Category)
		require.True(t, stdErrors.Is(err, cause))
		require.Equal(t, "/srv/docs", err.Context["docs_root"])
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("output.format", "unsupported value")
		require.Equal(t, CategoryValidation, err.Category)
		require.Equal(t, "output.format", err.Context["field"])
		require.Equal(t, "unsupported value", err.Context["reason"])
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Equal(t, 0, a.ExitCodeFor(nil))
	require.Equal(t, 1, a.ExitCodeFor(fmt.Errorf("plain")))
	require.Equal(t, 2, a.ExitCodeFor(ValidationFailed("prefix", "bad")))
	require.Equal(t, 7, a.ExitCodeFor(ConfigNotFound("x.yaml")))
	require.Equal(t, 11, a.ExitCodeFor(fmt.Errorf("wrapped: %w", DocsRootUnreadable("/docs", nil))))
	require.Equal(t, 12, a.ExitCodeFor(WatchFailed("add", nil)))
	require.Equal(t, 13, a.ExitCodeFor(OutputFailed("-", nil)))
	require.Equal(t, 10, a.ExitCodeFor(InternalError("oops", nil)))
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))

	code := a.Report(DocsRootUnreadable("/docs", fmt.Errorf("open /docs: no such file or directory")), &out)

	require.Equal(t, 11, code)
	require.Equal(t, "filesystem: docs tree could not be read: open /docs: no such file or directory\n", out.String())
	require.Contains(t, logs.String(), "docs_root=/docs")
	require.Contains(t, logs.String(), "category=filesystem")
}

func TestCLIErrorAdapter_VerboseFormatting(t *testing.T) {
	a := NewCLIErrorAdapter(true, nil)
	err := ConfigInvalid("sidebar.yaml", fmt.Errorf("line 3: unknown field"))

	require.Equal(t, "config (fatal): configuration invalid: line 3: unknown field", a.FormatError(err))
	require.Equal(t, "Error: plain", a.FormatError(fmt.Errorf("plain")))
}
