package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *DocError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration could not be parsed").
		WithContext("path", path)
}

func ConfigRequired(field string) *DocError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *DocError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Git errors

func CommitUnresolved(dir string, cause error) *DocError {
	return Wrap(cause, CategoryGit, SeverityFatal, "could not resolve current commit").
		WithContext("dir", dir)
}

// Output errors

func RenderFailed(format string, cause error) *DocError {
	return Wrap(cause, CategoryRender, SeverityFatal, "rendering configuration failed").
		WithContext("format", format)
}

func WriteFailed(path string, cause error) *DocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "writing output failed").
		WithContext("path", path)
}
