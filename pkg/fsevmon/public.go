package fsevmon

import (
	"context"

	"github.com/black-desk/filemon/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

func (m *FSEventMonitor) Events() <-chan types.FileEvent {
	return m.eventsOut
}

// Run drives the read-decode-classify-dispatch cycle until ctx is
// cancelled or an unrecoverable error occurs. The directory watch is
// mandatory; the file watch is armed best-effort and re-armed when
// the target is recreated. On return both watches are removed and the
// events channel is closed.
func (m *FSEventMonitor) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running filesystem event monitor")
	defer close(m.eventsOut)
	defer func() { _ = m.watches.Close() }()

	err = m.watches.AddDirWatch(m.parentDir)
	if err != nil {
		return
	}

	// The target may legitimately not exist yet. The directory watch
	// reports its creation later.
	err = m.watches.AddFileWatch(string(m.target))
	if err != nil {
		m.log.Infow("Target file is not watchable yet.",
			"target", m.target,
			"error", err,
		)
		err = nil
	}

	stop := context.AfterFunc(ctx, func() {
		_ = m.reader.Close()
	})
	defer stop()

	m.log.Debugw("Filesystem event monitor running.",
		"directory", m.parentDir,
		"file", m.fileName,
	)

	for {
		var n int
		n, err = m.reader.Read(m.buf)
		if err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
				return
			}

			Wrap(&err, "read inotify events")
			return
		}

		err = m.processBatch(ctx, m.buf[:n])
		if err != nil {
			return
		}
	}
}
