// Package placeholder extracts `${name}` and `${name:default}` declarations
// from free text. Scanning is a best-effort textual pass: malformed input is
// left alone, nothing is rejected, and the same text always yields the same
// ordered result. The matching grammar lives in internal/placeholder so it can
// be replaced without touching callers.
package placeholder
