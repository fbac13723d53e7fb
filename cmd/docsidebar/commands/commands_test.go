package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsidebar/internal/config"
	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
	"git.home.luguber.info/inful/docsidebar/internal/testutil"
)

// setupProject creates a docs tree in a temp dir and makes it the working directory.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := testutil.Project(t,
		"guide/intro.md",
		"guide/01-setup.md",
		"guide/-draft.md",
		"assets/logo.md",
		"api/index.md",
	)
	t.Chdir(dir)
	return dir
}

func TestBuildCmd_WritesJSONToStdout(t *testing.T) {
	dir := setupProject(t)
	cli := &CLI{Config: filepath.Join(dir, "docsidebar.yaml")}
	var out bytes.Buffer

	cmd := &BuildCmd{SidebarFlags{Format: "json", Ignore: []string{"api"}}}
	require.NoError(t, cmd.Run(&Global{Stdout: &out}, cli))
	require.JSONEq(t, `{"/guide/": [{"items": [
		{"text": "01-setup", "link": "/guide/01-setup.html"},
		{"text": "intro", "link": "/guide/intro.html"}
	]}]}`, out.String())
}

func TestBuildCmd_ConfigFileAndWrappedOutput(t *testing.T) {
	dir := setupProject(t)
	cfgPath := filepath.Join(dir, "docsidebar.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
prefix: "-"
ignore_index_item: true
output:
  file: sidebar.yaml
  wrap: true
`), 0o644))

	cmd := &BuildCmd{SidebarFlags{Expanded: true}}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: cfgPath}))

	data, err := os.ReadFile(filepath.Join(dir, "sidebar.yaml"))
	require.NoError(t, err)

	var doc struct {
		ThemeConfig struct {
			Sidebar map[string][]struct {
				Items []map[string]any `yaml:"items"`
			} `yaml:"sidebar"`
		} `yaml:"themeConfig"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotContains(t, doc.ThemeConfig.Sidebar, "/api/")
	require.Len(t, doc.ThemeConfig.Sidebar["/guide/"], 1)
	require.Equal(t, "setup", doc.ThemeConfig.Sidebar["/guide/"][0].Items[0]["text"])
}

func TestBuildCmd_InvalidFormat(t *testing.T) {
	dir := setupProject(t)
	cmd := &BuildCmd{SidebarFlags{Format: "toml"}}
	err := cmd.Run(&Global{Stdout: &bytes.Buffer{}}, &CLI{Config: filepath.Join(dir, "none.yaml")})
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
}

func TestBuildCmd_MissingDocsDirectory(t *testing.T) {
	dir := setupProject(t)
	cmd := &BuildCmd{SidebarFlags{Path: "/nope"}}
	err := cmd.Run(&Global{Stdout: &bytes.Buffer{}}, &CLI{Config: filepath.Join(dir, "none.yaml")})
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
	require.Equal(t, 11, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsidebar.yaml")
	var out bytes.Buffer

	cmd := &InitCmd{}
	require.NoError(t, cmd.Run(&Global{Stdout: &out}, &CLI{Config: cfgPath}))
	require.Contains(t, out.String(), "initialized successfully")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, config.DefaultPath, cfg.Path)

	require.Error(t, cmd.Run(&Global{Stdout: &out}, &CLI{Config: cfgPath}))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{Stdout: &out}, &CLI{Config: cfgPath}))
}

func TestCLI_ParsesFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"-c", "site.yaml", "build",
		"--path", "/content",
		"--ignore", "drafts", "--ignore", "internal",
		"--prefix", "-",
		"--expanded",
		"-o", "out.json",
	})
	require.NoError(t, err)
	require.Equal(t, "site.yaml", cli.Config)
	require.Equal(t, "/content", cli.Build.Path)
	require.Equal(t, []string{"drafts", "internal"}, cli.Build.Ignore)
	require.True(t, cli.Build.Expanded)
	require.Equal(t, "out.json", cli.Build.Output)

	cfg := config.Default()
	cli.Build.apply(cfg)
	require.Equal(t, "/content", cfg.Path)
	require.NotNil(t, cfg.Collapsed)
	require.False(t, *cfg.Collapsed)
	require.Equal(t, config.FormatJSON, cfg.Output.ResolvedFormat())
}

func TestCLI_CollapsedAndExpandedConflict(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"build", "--collapsed", "--expanded"})
	require.Error(t, err)
}

func TestCLI_WatchDurations(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"watch", "--debounce", "50ms", "--poll-interval", "30s"})
	require.NoError(t, err)
	require.Equal(t, 50*time.Millisecond, cli.Watch.Debounce)
	require.Equal(t, 30*time.Second, cli.Watch.PollInterval)
}

func TestRunWatch_BuildsAndServesMetrics(t *testing.T) {
	dir := setupProject(t)
	cfg := config.Default()
	cfg.Output.File = "sidebar.json"
	cfg.Watch.Debounce = 20 * time.Millisecond
	cfg.Watch.MetricsAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, cfg, dir, config.Default().Logging.NewLogger(os.Stderr, false), &bytes.Buffer{}) }()

	target := filepath.Join(dir, "sidebar.json")
	require.Eventually(t, func() bool {
		_, err := os.Stat(target)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "guide", "faq.md"), []byte("# faq\n"), 0o644))
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && bytes.Contains(data, []byte("/guide/faq.html"))
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRunWatch_InvalidMetricsAddr(t *testing.T) {
	dir := setupProject(t)
	cfg := config.Default()
	cfg.Watch.MetricsAddr = "256.0.0.1:1"

	err := runWatch(t.Context(), cfg, dir, config.Default().Logging.NewLogger(os.Stderr, false), &bytes.Buffer{})
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryWatch))
}
