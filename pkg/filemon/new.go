package filemon

import (
	"github.com/black-desk/filemon/pkg/filemon/config"
	"github.com/black-desk/filemon/pkg/interfaces"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// FileMon composes the filesystem event monitor with the reporter
// draining its events.
type FileMon struct {
	cfg *config.Config

	fsMonitor interfaces.FSEventMonitor
	reporter  interfaces.Reporter

	log *zap.SugaredLogger
}

type Opt = (func(*FileMon) (*FileMon, error))

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/filemon/pkg/filemon.FileMon -as interfaces.FileMon -o ../interfaces/filemon.go

func New(opts ...Opt) (ret *FileMon, err error) {
	defer Wrap(&err, "create new filemon core")

	c := &FileMon{}
	for i := range opts {
		c, err = opts[i](c)
		if err != nil {
			c = nil
			return
		}
	}

	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}

	if c.cfg == nil {
		err = ErrConfigMissing
		return
	}

	if c.fsMonitor == nil {
		err = ErrFSEventMonitorMissing
		return
	}

	if c.reporter == nil {
		err = ErrReporterMissing
		return
	}

	ret = c

	c.log.Debugw("Create a new core.",
		"configuration", c.cfg,
	)

	return
}

func WithConfig(cfg *config.Config) Opt {
	return func(core *FileMon) (ret *FileMon, err error) {
		core.cfg = cfg
		ret = core
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(core *FileMon) (ret *FileMon, err error) {
		core.log = log
		ret = core
		return
	}
}

func WithFSEventMonitor(mon interfaces.FSEventMonitor) Opt {
	return func(core *FileMon) (ret *FileMon, err error) {
		core.fsMonitor = mon
		ret = core
		return
	}
}

func WithReporter(rep interfaces.Reporter) Opt {
	return func(core *FileMon) (ret *FileMon, err error) {
		core.reporter = rep
		ret = core
		return
	}
}
