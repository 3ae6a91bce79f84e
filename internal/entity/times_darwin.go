//go:build darwin

package entity

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access and birth times from the platform stat record.
func statTimes(info os.FileInfo) (atime, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	atime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	if st.Birthtimespec.Sec != 0 {
		ctime = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	} else {
		ctime = info.ModTime()
	}
	return atime, ctime
}
