package fsevmon

import (
	"io"
	"path/filepath"

	"github.com/black-desk/filemon/pkg/filemon/config"
	"github.com/black-desk/filemon/pkg/interfaces"
	"github.com/black-desk/filemon/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// FSEventMonitor watches one file through an inotify watch set and
// reports each change about it as a typed event. The directory watch
// keeps the monitor alive across delete/recreate cycles of the target.
type FSEventMonitor struct {
	watches interfaces.WatchSet
	reader  io.ReadCloser

	target    config.Target
	parentDir string
	fileName  string

	buf []byte

	eventsOut chan types.FileEvent

	log *zap.SugaredLogger
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/filemon/pkg/fsevmon.FSEventMonitor -as interfaces.FSEventMonitor -o ../interfaces/fsevmon.go

func New(opts ...Opt) (ret *FSEventMonitor, err error) {
	defer Wrap(&err, "create filesystem event monitor")

	m := &FSEventMonitor{}

	m.eventsOut = make(chan types.FileEvent)

	for i := range opts {
		m, err = opts[i](m)
		if err != nil {
			return
		}
	}

	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}

	if m.target == "" {
		err = ErrTargetMissing
		return
	}

	if m.watches == nil {
		err = ErrWatchesMissing
		return
	}

	if m.reader == nil {
		m.reader = m.watches.Reader()
	}

	if m.buf == nil {
		m.buf = make([]byte, config.DefaultReadBufferSize)
	}

	dir, name := filepath.Split(string(m.target))
	m.parentDir = filepath.Clean(dir)
	m.fileName = name

	ret = m

	m.log.Debugw("Create a new filesystem event monitor.",
		"target", m.target,
	)

	return
}

type Opt func(m *FSEventMonitor) (ret *FSEventMonitor, err error)

func WithTarget(target config.Target) Opt {
	return func(m *FSEventMonitor) (ret *FSEventMonitor, err error) {
		if target == "" {
			err = ErrTargetMissing
			return
		}

		m.target = target
		ret = m
		return
	}
}

func WithWatches(w interfaces.WatchSet) Opt {
	return func(m *FSEventMonitor) (ret *FSEventMonitor, err error) {
		if w == nil {
			err = ErrWatchesMissing
			return
		}

		m.watches = w
		ret = m
		return
	}
}

// WithReader overrides the byte source the monitor reads inotify
// records from. Defaults to the watch set's own reader.
func WithReader(r io.ReadCloser) Opt {
	return func(m *FSEventMonitor) (ret *FSEventMonitor, err error) {
		if r == nil {
			err = ErrReaderMissing
			return
		}

		m.reader = r
		ret = m
		return
	}
}

func WithReadBufferSize(size int) Opt {
	return func(m *FSEventMonitor) (ret *FSEventMonitor, err error) {
		if size > 0 {
			m.buf = make([]byte, size)
		}

		ret = m
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(m *FSEventMonitor) (ret *FSEventMonitor, err error) {
		m.log = log
		ret = m
		return
	}
}
