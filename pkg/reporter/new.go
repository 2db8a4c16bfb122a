package reporter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/black-desk/filemon/pkg/filemon/config"
	"github.com/black-desk/filemon/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Reporter drains the monitor's event channel and renders each event
// for the caller.
type Reporter struct {
	eventsIn <-chan types.FileEvent

	target    config.Target
	parentDir string
	fileName  string

	out io.Writer
	log *zap.SugaredLogger
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/filemon/pkg/reporter.Reporter -as interfaces.Reporter -o ../interfaces/reporter.go

func New(opts ...Opt) (ret *Reporter, err error) {
	defer Wrap(&err, "create event reporter")

	r := &Reporter{}
	for i := range opts {
		r, err = opts[i](r)
		if err != nil {
			return
		}
	}

	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}

	if r.eventsIn == nil {
		err = ErrEventChanMissing
		return
	}

	if r.target == "" {
		err = ErrTargetMissing
		return
	}

	if r.out == nil {
		r.out = os.Stdout
	}

	dir, name := filepath.Split(string(r.target))
	r.parentDir = filepath.Clean(dir)
	r.fileName = name

	ret = r

	r.log.Debugw("Create a new event reporter.")

	return
}

type Opt func(r *Reporter) (ret *Reporter, err error)

func WithInput(ch <-chan types.FileEvent) Opt {
	return func(r *Reporter) (ret *Reporter, err error) {
		if ch == nil {
			err = ErrEventChanMissing
			return
		}

		r.eventsIn = ch
		ret = r
		return
	}
}

func WithTarget(target config.Target) Opt {
	return func(r *Reporter) (ret *Reporter, err error) {
		if target == "" {
			err = ErrTargetMissing
			return
		}

		r.target = target
		ret = r
		return
	}
}

func WithOutput(out io.Writer) Opt {
	return func(r *Reporter) (ret *Reporter, err error) {
		r.out = out
		ret = r
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(r *Reporter) (ret *Reporter, err error) {
		r.log = log
		ret = r
		return
	}
}
