// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "go.uber.org/zap"

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Target is the file to watch. Its parent directory must exist
	// when the monitor starts; the file itself may not exist yet.
	Target Target `yaml:"target" validate:"required,filepath"`

	// ReadBufferSize is the size in bytes of the buffer one inotify
	// read fills. The kernel refuses reads smaller than a single
	// maximum-length record, so keep this at 512 or above.
	ReadBufferSize int `yaml:"read-buffer-size" validate:"omitempty,gte=512"`

	log *zap.SugaredLogger `yaml:"-"`
}

type Target string
