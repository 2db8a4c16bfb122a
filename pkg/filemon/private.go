package filemon

import (
	"context"
)

func (c *FileMon) runFSEventMonitor(ctx context.Context) (err error) {
	defer c.log.Debugw("Filesystem event monitor exited.")

	c.log.Debugw("Start filesystem event monitor.")

	err = c.fsMonitor.Run(ctx)
	if err != nil {
		return
	}

	return ctx.Err()
}

func (c *FileMon) runReporter(ctx context.Context) (err error) {
	defer c.log.Debugw("Event reporter exited.")

	c.log.Debugw("Start event reporter.")

	err = c.reporter.Run(ctx)
	if err != nil {
		return
	}

	return ctx.Err()
}
