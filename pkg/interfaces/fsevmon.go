// Created by interfacer; DO NOT EDIT

package interfaces

import (
	"context"

	"github.com/black-desk/filemon/pkg/types"
)

// FSEventMonitor is an interface generated for "github.com/black-desk/filemon/pkg/fsevmon".FSEventMonitor.
type FSEventMonitor interface {
	Events() <-chan types.FileEvent
	Run(context.Context) error
}
