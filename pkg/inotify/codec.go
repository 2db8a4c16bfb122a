package inotify

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Event is one decoded inotify record.
type Event struct {
	Wd     int32
	Mask   uint32
	Cookie uint32
	// Name is the directory entry the record concerns.
	// Only set for records coming from a directory watch.
	Name string
}

// ParseEvents decodes the inotify records contained in buf, which
// holds the bytes of exactly one read from the inotify descriptor.
//
// A record whose header or name is cut off at the end of buf is
// dropped rather than reassembled later. The kernel never splits a
// record across reads, so a truncated tail only shows up when the
// read buffer itself is too small for a full record.
func ParseEvents(buf []byte) (events []Event) {
	n := uint32(len(buf))

	for offset := uint32(0); offset+unix.SizeofInotifyEvent <= n; {
		raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))

		if offset+unix.SizeofInotifyEvent+raw.Len > n {
			// Partial trailing name. Never expose garbage bytes.
			break
		}

		event := Event{
			Wd:     raw.Wd,
			Mask:   raw.Mask,
			Cookie: raw.Cookie,
		}

		if raw.Len > 0 {
			name := buf[offset+unix.SizeofInotifyEvent : offset+unix.SizeofInotifyEvent+raw.Len]
			// The name field is padded with NULs up to Len.
			if i := bytes.IndexByte(name, 0); i >= 0 {
				name = name[:i]
			}
			event.Name = string(name)
		}

		events = append(events, event)

		offset += unix.SizeofInotifyEvent + raw.Len
	}

	return
}
