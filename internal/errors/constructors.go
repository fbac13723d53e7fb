package errors

// Config errors

func ConfigNotFound(path string) *SidebarError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SidebarError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SidebarError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Docs tree and output errors

func DocsRootUnreadable(root string, cause error) *SidebarError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "docs tree could not be read").
		WithContext("docs_root", root)
}

func OutputFailed(target string, cause error) *SidebarError {
	return Wrap(cause, CategoryOutput, SeverityFatal, "sidebar output failed").
		WithContext("output", target)
}

// Runtime errors

func WatchFailed(operation string, cause error) *SidebarError {
	return Wrap(cause, CategoryWatch, SeverityFatal, "watch failed").
		WithContext("operation", operation)
}

func InternalError(message string, cause error) *SidebarError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
