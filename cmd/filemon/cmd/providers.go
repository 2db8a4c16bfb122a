package cmd

import (
	"os"

	"github.com/black-desk/filemon/pkg/filemon"
	"github.com/black-desk/filemon/pkg/filemon/config"
	"github.com/black-desk/filemon/pkg/fsevmon"
	"github.com/black-desk/filemon/pkg/inotify"
	"github.com/black-desk/filemon/pkg/interfaces"
	"github.com/black-desk/filemon/pkg/reporter"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func provideWatches(logger *zap.SugaredLogger) (*inotify.Watches, error) {
	return inotify.New(
		inotify.WithLogger(logger),
	)
}

func provideFSEventMonitor(
	cfg *config.Config,
	watches *inotify.Watches,
	logger *zap.SugaredLogger,
) (
	interfaces.FSEventMonitor, error,
) {
	return fsevmon.New(
		fsevmon.WithTarget(cfg.Target),
		fsevmon.WithWatches(watches),
		fsevmon.WithReadBufferSize(cfg.ReadBufferSize),
		fsevmon.WithLogger(logger),
	)
}

func provideReporter(
	cfg *config.Config,
	mon interfaces.FSEventMonitor,
	logger *zap.SugaredLogger,
) (
	interfaces.Reporter, error,
) {
	return reporter.New(
		reporter.WithTarget(cfg.Target),
		reporter.WithInput(mon.Events()),
		reporter.WithOutput(os.Stdout),
		reporter.WithLogger(logger),
	)
}

func provideFileMon(
	cfg *config.Config,
	mon interfaces.FSEventMonitor,
	rep interfaces.Reporter,
	logger *zap.SugaredLogger,
) (
	interfaces.FileMon, error,
) {
	return filemon.New(
		filemon.WithConfig(cfg),
		filemon.WithFSEventMonitor(mon),
		filemon.WithReporter(rep),
		filemon.WithLogger(logger),
	)
}

var set = wire.NewSet(
	provideWatches,
	provideFSEventMonitor,
	provideReporter,
	provideFileMon,
)
