package store

import (
	"fmt"
	"time"
)

// Key prefixes. Entities that need ordered scans encode ordering into
// the key suffix (zero-padded timestamps or versions sort lexically).
const (
	photoPrefix    = "photo:"
	swipePrefix    = "swipe:"
	profilePrefix  = "styleprofile:"
	snapshotPrefix = "snapshot:"
	feedbackPrefix = "feedback:"
	insightPrefix  = "insight:"
	sessionPrefix  = "swipesession:"
)

// tsKey renders a timestamp as a fixed-width, lexically sortable string.
func tsKey(t time.Time) string {
	return fmt.Sprintf("%020d", t.UnixNano())
}

// versionKey renders a snapshot version as a fixed-width string.
func versionKey(version int) string {
	return fmt.Sprintf("%06d", version)
}

func photoKey(id string) string {
	return photoPrefix + id
}

// swipeKey orders a swipe under its owning identity by creation time.
func swipeKey(identity string, createdAt time.Time, id string) string {
	return swipePrefix + identity + ":" + tsKey(createdAt) + ":" + id
}

func swipeScanPrefix(identity string) string {
	return swipePrefix + identity + ":"
}

// profileKey orders profiles under their identity by creation time, so
// a scan returns them oldest first.
func profileKey(identity string, createdAt time.Time, id string) string {
	return profilePrefix + identity + ":" + tsKey(createdAt) + ":" + id
}

func profileScanPrefix(identity string) string {
	return profilePrefix + identity + ":"
}

// snapshotKey orders snapshots under their profile by version.
func snapshotKey(profileID string, version int, id string) string {
	return snapshotPrefix + profileID + ":" + versionKey(version) + ":" + id
}

func snapshotScanPrefix(profileID string) string {
	return snapshotPrefix + profileID + ":"
}

func feedbackKey(identity string, createdAt time.Time, id string) string {
	return feedbackPrefix + identity + ":" + tsKey(createdAt) + ":" + id
}

func feedbackScanPrefix(identity string) string {
	return feedbackPrefix + identity + ":"
}

func insightKey(identity string, createdAt time.Time, id string) string {
	return insightPrefix + identity + ":" + tsKey(createdAt) + ":" + id
}

func insightScanPrefix(identity string) string {
	return insightPrefix + identity + ":"
}

func sessionKey(sessionID string) string {
	return sessionPrefix + sessionID
}
