package reporter

import (
	"context"
	"fmt"

	"github.com/black-desk/filemon/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

// Run consumes events until the input channel is closed or ctx is
// cancelled.
func (r *Reporter) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running event reporter")

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case event, ok := <-r.eventsIn:
			if !ok {
				r.log.Debugw("Event channel closed.")
				return
			}

			r.report(&event)
		}
	}
}

func (r *Reporter) report(event *types.FileEvent) {
	switch event.Kind {
	case types.WatchKindDirectory:
		fmt.Fprintf(r.out, "%s inside %s\n    %s\n",
			event.Name, r.parentDir, event.Description,
		)
	case types.WatchKindFile:
		fmt.Fprintf(r.out, "%s\n    %s\n",
			r.fileName, event.Description,
		)
	}

	r.log.Infow("File event.",
		"kind", event.Kind,
		"name", event.Name,
		"description", event.Description,
		"mask", event.Mask,
	)
}
