package config

import (
	"fmt"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if !filepath.IsAbs(string(c.Target)) {
		err = &ErrTargetNotAbsolute{Actual: string(c.Target)}
		return
	}

	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = DefaultReadBufferSize

		c.log.Debugw("Read buffer size not set, use default.",
			"size", c.ReadBufferSize,
		)
	}

	return
}
