package inotify

import (
	"os"
	"sync"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Watches owns a single inotify instance together with at most one
// directory level watch and at most one file level watch.
type Watches struct {
	conn *os.File
	fd   int

	dir  watchSlot
	file watchSlot

	closeOnce sync.Once

	log *zap.SugaredLogger
}

// watchSlot tags a watch descriptor with its liveness,
// so business logic never compares against a -1 sentinel.
type watchSlot struct {
	wd     int32
	active bool
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/filemon/pkg/inotify.Watches -as interfaces.WatchSet -o ../interfaces/inotify.go

func New(opts ...Opt) (ret *Watches, err error) {
	defer Wrap(&err, "create inotify watch set")

	w := &Watches{}
	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	var fd int
	fd, err = unix.InotifyInit1(unix.IN_CLOEXEC | unix.IN_NONBLOCK)
	if err != nil {
		Wrap(&err, "inotify_init1")
		return
	}

	w.fd = fd
	// The non-blocking descriptor gets registered with the runtime
	// poller here, so a concurrent Close unblocks readers.
	w.conn = os.NewFile(uintptr(fd), "inotify")

	ret = w

	w.log.Debugw("Create a new inotify watch set.")

	return
}

type Opt func(w *Watches) (ret *Watches, err error)

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *Watches) (ret *Watches, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}
