// Package testutil contains helpers shared by tests that need a docs tree on disk.
package testutil

const (
	testDirPermissions  = 0o755
	testFilePermissions = 0o644
)
