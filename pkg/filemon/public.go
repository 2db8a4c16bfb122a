package filemon

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

func (c *FileMon) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running filemon core")

	pool := pool.New().
		WithContext(ctx).
		WithCancelOnError()

	pool.Go(c.runFSEventMonitor)
	pool.Go(c.runReporter)

	return pool.Wait()
}
