package posts

// Sentinel errors for post scanning. Neither aborts a run: the scanner logs
// them and yields fewer entries.

import "errors"

var (
	// ErrDirUnreadable indicates the posts directory exists but could not be listed.
	ErrDirUnreadable = errors.New("posts directory unreadable")

	// ErrStatFailed indicates a matching directory entry could not be stat'ed.
	ErrStatFailed = errors.New("post file stat failed")
)
