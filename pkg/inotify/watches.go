package inotify

import (
	"io"

	"github.com/black-desk/filemon/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"golang.org/x/sys/unix"
)

// Reader exposes the inotify event stream.
// One Read returns one batch of records, to be decoded by ParseEvents.
func (w *Watches) Reader() io.ReadCloser {
	return w.conn
}

// AddDirWatch registers interest in all events for the directory
// containing the target. Any previous directory watch is removed first.
func (w *Watches) AddDirWatch(dir string) (err error) {
	defer Wrap(&err, "add inotify watch on directory %s", dir)

	w.RemoveDirWatch()

	var wd int
	wd, err = unix.InotifyAddWatch(w.fd, dir, unix.IN_ALL_EVENTS)
	if err != nil {
		return
	}

	w.dir = watchSlot{wd: int32(wd), active: true}

	w.log.Debugw("Add inotify watch.",
		"directory", dir,
		"wd", wd,
	)

	return
}

// AddFileWatch registers interest in all events for the target file
// itself. Any previous file watch is removed first.
func (w *Watches) AddFileWatch(path string) (err error) {
	defer Wrap(&err, "add inotify watch on file %s", path)

	w.RemoveFileWatch()

	var wd int
	wd, err = unix.InotifyAddWatch(w.fd, path, unix.IN_ALL_EVENTS)
	if err != nil {
		return
	}

	w.file = watchSlot{wd: int32(wd), active: true}

	w.log.Debugw("Add inotify watch.",
		"file", path,
		"wd", wd,
	)

	return
}

func (w *Watches) RemoveDirWatch() {
	w.remove(&w.dir)
}

func (w *Watches) RemoveFileWatch() {
	w.remove(&w.file)
}

func (w *Watches) remove(slot *watchSlot) {
	if !slot.active {
		return
	}

	// The kernel drops the watch on its own when the watched object
	// disappears, so the result is intentionally ignored.
	_, _ = unix.InotifyRmWatch(w.fd, uint32(slot.wd))

	w.log.Debugw("Remove inotify watch.",
		"wd", slot.wd,
	)

	*slot = watchSlot{}
}

// Classify maps a watch descriptor from a decoded record back to the
// logical watch it belongs to. Records from descriptors removed
// earlier may still arrive in flight; those classify as Unknown.
func (w *Watches) Classify(wd int32) types.WatchKind {
	switch {
	case w.dir.active && wd == w.dir.wd:
		return types.WatchKindDirectory
	case w.file.active && wd == w.file.wd:
		return types.WatchKindFile
	default:
		return types.WatchKindUnknown
	}
}

func (w *Watches) FileWatchActive() bool {
	return w.file.active
}

// Close removes both watches and closes the inotify descriptor.
// Safe to call more than once.
func (w *Watches) Close() (err error) {
	w.closeOnce.Do(func() {
		defer Wrap(&err, "close inotify watch set")

		w.RemoveDirWatch()
		w.RemoveFileWatch()

		err = w.conn.Close()
	})

	return
}
