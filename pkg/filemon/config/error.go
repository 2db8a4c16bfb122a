// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
)

type ErrTargetNotAbsolute struct {
	Actual string
}

func (e *ErrTargetNotAbsolute) Error() string {
	return fmt.Sprintf(
		"`target` must be an absolute path, but we got %s",
		e.Actual,
	)
}
