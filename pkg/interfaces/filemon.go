// Created by interfacer; DO NOT EDIT

package interfaces

import (
	"context"
)

// FileMon is an interface generated for "github.com/black-desk/filemon/pkg/filemon".FileMon.
type FileMon interface {
	Run(context.Context) error
}
