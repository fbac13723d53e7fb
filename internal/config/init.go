package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const exampleConfig = `# docsidebar configuration
# Docs directory, joined onto the working directory.
path: /docs

# Top-level folders to skip besides scripts, components, assets and .vitepress.
ignore_list: []

# Drop index.md entries and remove sections left empty by that.
ignore_index_item: false

# Cut from labels up to and including its first occurrence, e.g. "01-".
# prefix: "-"

# Set on every directory group when present.
# collapsed: false

output:
  # Empty or "-" writes to stdout.
  file: ""
  # yaml or json; defaults from the file extension.
  # format: yaml
  # Update themeConfig.sidebar inside an existing site config instead.
  # merge_into: docs/.vitepress/sidebar.json

watch:
  debounce: 300ms
  # Rescan periodically for filesystems without change notifications.
  # poll_interval: 30s
  # metrics_addr: 127.0.0.1:9464

logging:
  # Empty values fall back to info.
  level: ${LOG_LEVEL}
  format: text
`

// Init writes an example configuration file, refusing to replace one unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
