//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/black-desk/filemon/pkg/filemon/config"
	"github.com/black-desk/filemon/pkg/interfaces"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedFileMon(
	*config.Config, *zap.SugaredLogger,
) (
	interfaces.FileMon, error,
) {
	panic(wire.Build(set))
}
