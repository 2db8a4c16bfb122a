// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package reporter

import "errors"

var (
	ErrEventChanMissing = errors.New("event channel is missing.")
	ErrTargetMissing    = errors.New("target is missing.")
)
