//go:build !linux && !darwin

package entity

import (
	"os"
	"time"
)

// statTimes falls back to the modification time where the platform stat
// record exposes no separate access or creation time.
func statTimes(info os.FileInfo) (atime, ctime time.Time) {
	return info.ModTime(), info.ModTime()
}
