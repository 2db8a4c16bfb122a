package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func New(opts ...Opt) (ret *Config, err error) {
	defer Wrap(&err, "create configuration")

	cfg := &Config{}
	for i := range opts {
		cfg, err = opts[i](cfg)
		if err != nil {
			return
		}
	}

	if cfg.log == nil {
		cfg.log = zap.NewNop().Sugar()
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg
	return
}

type Opt func(cfg *Config) (ret *Config, err error)

func WithContent(content []byte) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		err = yaml.Unmarshal(content, cfg)
		if err != nil {
			Wrap(&err, "unmarshal configuration")
			return
		}

		ret = cfg
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		cfg.log = log
		ret = cfg
		return
	}
}
