package booth

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

const (
	rawKeyPrefix      = "recordings"
	enhancedKeyPrefix = "enhanced"
)

var (
	unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9.-]+`)
	dashRuns       = regexp.MustCompile(`-{2,}`)
)

// SanitizeName makes a display name safe for use in storage keys and
// voice labels: anything outside [A-Za-z0-9.-] becomes a dash, dash
// runs collapse, and the result is lowercased.
func SanitizeName(name string) string {
	s := unsafeKeyChars.ReplaceAllString(name, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// storageKey derives a fresh object key for one artifact. The
// nanosecond timestamp keeps concurrent submissions with the same
// display name from colliding.
func storageKey(prefix, displayName, fileName string) string {
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixNano(), SanitizeName(displayName), strings.ToLower(path.Ext(fileName)))
}
