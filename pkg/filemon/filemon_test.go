package filemon_test

import (
	"context"
	"errors"
	"testing"

	"github.com/black-desk/filemon/pkg/filemon"
	"github.com/black-desk/filemon/pkg/filemon/config"
	"github.com/black-desk/filemon/pkg/types"
	. "github.com/black-desk/lib/go/gomega-helper"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeMonitor struct {
	events chan types.FileEvent
	err    error
}

func (m *fakeMonitor) Events() <-chan types.FileEvent {
	return m.events
}

func (m *fakeMonitor) Run(ctx context.Context) error {
	defer close(m.events)
	return m.err
}

type fakeReporter struct {
	events <-chan types.FileEvent
	seen   int
}

func (r *fakeReporter) Run(ctx context.Context) error {
	for range r.events {
		r.seen++
	}
	return nil
}

var _ = Describe("Filemon core", func() {
	var (
		cfg *config.Config
		err error
	)

	BeforeEach(func() {
		cfg, err = config.New(
			config.WithContent([]byte(`
version: 1
target: /tmp/d/f.txt
`)),
		)
		Expect(err).To(Succeed())
	})

	It("should propagate a monitor failure", func() {
		monErr := errors.New("watch went away")
		mon := &fakeMonitor{
			events: make(chan types.FileEvent),
			err:    monErr,
		}
		rep := &fakeReporter{events: mon.Events()}

		var c *filemon.FileMon
		c, err = filemon.New(
			filemon.WithConfig(cfg),
			filemon.WithFSEventMonitor(mon),
			filemon.WithReporter(rep),
		)
		Expect(err).To(Succeed())

		err = c.Run(context.Background())
		Expect(err).To(MatchErr(monErr))
	})

	It("should refuse to be created without a monitor", func() {
		_, err = filemon.New(
			filemon.WithConfig(cfg),
		)
		Expect(err).To(MatchErr(filemon.ErrFSEventMonitorMissing))
	})
})

func TestFileMon(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Filemon Core Suite")
}
