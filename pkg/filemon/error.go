// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package filemon

import (
	"errors"
)

var (
	ErrConfigMissing         = errors.New("config is missing.")
	ErrLoggerMissing         = errors.New("logger is missing.")
	ErrFSEventMonitorMissing = errors.New("filesystem event monitor is missing.")
	ErrReporterMissing       = errors.New("event reporter is missing.")
)
