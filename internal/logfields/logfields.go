package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyDir        = "dir"
	KeyCommit     = "commit"
	KeyVersion    = "version"
	KeyFormat     = "format"
	KeyResolver   = "resolver"
	KeyEntries    = "entries"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr          { return slog.String(KeyDir, d) }
func Commit(c string) slog.Attr       { return slog.String(KeyCommit, c) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Resolver(r string) slog.Attr     { return slog.String(KeyResolver, r) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
