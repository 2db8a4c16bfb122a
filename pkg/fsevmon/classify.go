package fsevmon

import (
	"golang.org/x/sys/unix"
)

var eventDescriptions = []struct {
	mask uint32
	desc string
}{
	{unix.IN_ACCESS, "File was accessed."},
	{unix.IN_ATTRIB, "Metadata changed."},
	{unix.IN_CLOSE_WRITE, "File opened for writing was closed."},
	{unix.IN_CLOSE_NOWRITE, "File or directory not opened for writing was closed."},
	{unix.IN_CREATE, "File or directory created in watched directory."},
	{unix.IN_DELETE, "File or directory deleted from watched directory."},
	{unix.IN_DELETE_SELF, "Watched file or directory was itself deleted."},
	{unix.IN_MODIFY, "File was modified."},
	{unix.IN_MOVE_SELF, "Watched file or directory was itself moved."},
	{unix.IN_MOVED_FROM, "File moved out of watched directory."},
	{unix.IN_MOVED_TO, "File moved into watched directory."},
	{unix.IN_OPEN, "File or directory was opened."},
}

// describe expands an event mask into one description per known bit
// set in it. The kernel can set several bits in a single record.
// Masks carrying no known bit describe to nothing.
func describe(mask uint32) (ret []string) {
	for i := range eventDescriptions {
		if mask&eventDescriptions[i].mask == 0 {
			continue
		}

		ret = append(ret, eventDescriptions[i].desc)
	}

	return
}

// applyTransition mutates the watch set as a directory record about
// the target name requires. A name showing up under the watched
// directory points at a fresh inode, so any old file watch is stale
// and gets replaced; a name leaving the directory invalidates the
// file watch entirely.
func (m *FSEventMonitor) applyTransition(mask uint32) (err error) {
	switch {
	case mask&(unix.IN_CREATE|unix.IN_MOVED_TO) != 0:
		m.watches.RemoveFileWatch()

		err = m.watches.AddFileWatch(string(m.target))
		if err != nil {
			// Without the file watch re-armed the monitor cannot
			// keep its view of the target consistent.
			err = &ErrFileWatchRearm{Cause: err}
			return
		}

		m.log.Debugw("File watch re-armed.",
			"target", m.target,
		)

	case mask&(unix.IN_DELETE|unix.IN_MOVED_FROM) != 0:
		m.watches.RemoveFileWatch()
	}

	return
}
