package fsevmon

import (
	"context"

	"github.com/black-desk/filemon/pkg/inotify"
	"github.com/black-desk/filemon/pkg/types"
)

func (m *FSEventMonitor) processBatch(ctx context.Context, buf []byte) (err error) {
	events := inotify.ParseEvents(buf)

	for i := range events {
		err = m.processEvent(ctx, &events[i])
		if err != nil {
			return
		}
	}

	return
}

func (m *FSEventMonitor) processEvent(ctx context.Context, event *inotify.Event) (err error) {
	switch m.watches.Classify(event.Wd) {
	case types.WatchKindDirectory:
		if event.Name != m.fileName {
			// Some other entry in the parent directory.
			return
		}

		err = m.applyTransition(event.Mask)
		if err != nil {
			return
		}

		err = m.send(ctx, event, types.WatchKindDirectory)

	case types.WatchKindFile:
		err = m.send(ctx, event, types.WatchKindFile)

	default:
		// The kernel may still deliver records from a watch removed
		// earlier, and descriptors get reused.
		m.log.Debugw("Discard event from unknown watch descriptor.",
			"wd", event.Wd,
			"mask", event.Mask,
		)
	}

	return
}

func (m *FSEventMonitor) send(ctx context.Context, event *inotify.Event, kind types.WatchKind) (err error) {
	descriptions := describe(event.Mask)

	for i := range descriptions {
		fileEvent := types.FileEvent{
			Description: descriptions[i],
			Kind:        kind,
			Name:        event.Name,
			Mask:        event.Mask,
		}

		m.log.Debugw("New file event.",
			"event", fileEvent,
		)

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case m.eventsOut <- fileEvent:
		}
	}

	return
}
