// Created by interfacer; DO NOT EDIT

package interfaces

import (
	"context"
)

// Reporter is an interface generated for "github.com/black-desk/filemon/pkg/reporter".Reporter.
type Reporter interface {
	Run(context.Context) error
}
