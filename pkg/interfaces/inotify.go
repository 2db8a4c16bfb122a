// Created by interfacer; DO NOT EDIT

package interfaces

import (
	"github.com/black-desk/filemon/pkg/types"
	"io"
)

// WatchSet is an interface generated for "github.com/black-desk/filemon/pkg/inotify".Watches.
type WatchSet interface {
	AddDirWatch(string) error
	AddFileWatch(string) error
	Classify(int32) types.WatchKind
	Close() error
	FileWatchActive() bool
	Reader() io.ReadCloser
	RemoveDirWatch()
	RemoveFileWatch()
}
