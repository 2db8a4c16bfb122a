package inotify_test

import (
	"io"
	"os"
	"path/filepath"

	"github.com/black-desk/filemon/pkg/inotify"
	"github.com/black-desk/filemon/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sys/unix"
)

var _ = Describe("Inotify watch set", func() {
	var (
		w      *inotify.Watches
		tmpDir string
		err    error
	)

	BeforeEach(func() {
		tmpDir, err = os.MkdirTemp("/tmp", "*")
		Expect(err).To(Succeed())

		w, err = inotify.New()
		Expect(err).To(Succeed())
	})

	AfterEach(func() {
		err = w.Close()
		Expect(err).To(Succeed())

		err = os.RemoveAll(tmpDir)
		Expect(err).To(Succeed())
	})

	readBatch := func(r io.Reader) []inotify.Event {
		buf := make([]byte, 4096)
		n, err := r.Read(buf)
		Expect(err).To(Succeed())
		return inotify.ParseEvents(buf[:n])
	}

	Context("watching a directory", func() {
		BeforeEach(func() {
			err = w.AddDirWatch(tmpDir)
			Expect(err).To(Succeed())
		})

		It("should report entries created inside it", func() {
			err = os.WriteFile(filepath.Join(tmpDir, "f.txt"), []byte("x"), 0o644)
			Expect(err).To(Succeed())

			events := readBatch(w.Reader())
			Expect(events).ToNot(BeEmpty())

			var created *inotify.Event
			for i := range events {
				if events[i].Mask&unix.IN_CREATE != 0 {
					created = &events[i]
					break
				}
			}

			Expect(created).ToNot(BeNil())
			Expect(created.Name).To(Equal("f.txt"))
			Expect(w.Classify(created.Wd)).To(Equal(types.WatchKindDirectory))
		})

		It("should fail for a directory that does not exist", func() {
			err = w.AddDirWatch(filepath.Join(tmpDir, "missing"))
			Expect(err).ToNot(Succeed())
		})
	})

	Context("watching a file", func() {
		var target string

		BeforeEach(func() {
			target = filepath.Join(tmpDir, "f.txt")
			err = os.WriteFile(target, []byte("x"), 0o644)
			Expect(err).To(Succeed())
		})

		It("should report modifications of the file itself", func() {
			err = w.AddFileWatch(target)
			Expect(err).To(Succeed())
			Expect(w.FileWatchActive()).To(BeTrue())

			err = os.WriteFile(target, []byte("xy"), 0o644)
			Expect(err).To(Succeed())

			events := readBatch(w.Reader())
			Expect(events).ToNot(BeEmpty())

			var fileScoped bool
			for i := range events {
				if w.Classify(events[i].Wd) == types.WatchKindFile {
					fileScoped = true
					Expect(events[i].Name).To(BeEmpty())
				}
			}
			Expect(fileScoped).To(BeTrue())
		})

		It("should fail for a file that does not exist", func() {
			err = w.AddFileWatch(filepath.Join(tmpDir, "missing.txt"))
			Expect(err).ToNot(Succeed())
			Expect(w.FileWatchActive()).To(BeFalse())
		})

		It("should remove the file watch idempotently", func() {
			err = w.AddFileWatch(target)
			Expect(err).To(Succeed())

			w.RemoveFileWatch()
			Expect(w.FileWatchActive()).To(BeFalse())

			// Removing an already absent watch is a no-op.
			w.RemoveFileWatch()
			Expect(w.FileWatchActive()).To(BeFalse())
		})

		It("should replace the previous watch when armed again", func() {
			err = w.AddFileWatch(target)
			Expect(err).To(Succeed())

			err = w.AddFileWatch(target)
			Expect(err).To(Succeed())

			Expect(w.FileWatchActive()).To(BeTrue())
		})
	})

	Context("tearing down", func() {
		It("should tolerate being closed twice", func() {
			err = w.AddDirWatch(tmpDir)
			Expect(err).To(Succeed())

			err = w.Close()
			Expect(err).To(Succeed())

			err = w.Close()
			Expect(err).To(Succeed())
		})
	})
})
