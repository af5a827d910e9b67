package storage

import (
	"errors"
	"path"
	"slices"
	"strings"
	"time"
)

// ErrObjectNotFound is returned by Get when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

const (
	archivePrefix = "exports"
	archiveExt    = ".json"
	archiveStamp  = "20060102T150405.000000000Z"
)

// ArchiveKey returns the object key an export of pageID taken at t is stored under.
func ArchiveKey(pageID string, t time.Time) string {
	return path.Join(archivePrefix, pageID, t.UTC().Format(archiveStamp)+archiveExt)
}

// archiveDir is the listing prefix for every archive of pageID.
func archiveDir(pageID string) string {
	return archivePrefix + "/" + pageID + "/"
}

// ParseArchiveKey splits an archive key into its page id and timestamp.
// ok is false for anything that is not exports/<page>/<file>.json.
func ParseArchiveKey(key string) (pageID string, ok bool) {
	if strings.Contains(key, "..") || !strings.HasSuffix(key, archiveExt) {
		return "", false
	}
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != archivePrefix || parts[1] == "" || parts[2] == archiveExt {
		return "", false
	}
	return parts[1], true
}

// IsArchiveKey reports whether key names an export archive.
func IsArchiveKey(key string) bool {
	_, ok := ParseArchiveKey(key)
	return ok
}

func archiveFilename(key string) string {
	if id, ok := ParseArchiveKey(key); ok {
		return id + "-" + path.Base(key)
	}
	return path.Base(key)
}

// sortNewestFirst orders archives by creation time, then key, descending.
func sortNewestFirst(as []Archive) {
	slices.SortFunc(as, func(a, b Archive) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.Key, a.Key)
	})
}
