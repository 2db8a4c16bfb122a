// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsevmon

import (
	"errors"
	"fmt"
)

var (
	ErrTargetMissing  = errors.New("target is missing.")
	ErrWatchesMissing = errors.New("watch set is missing.")
	ErrReaderMissing  = errors.New("reader is missing.")
)

// ErrFileWatchRearm reports that the file watch could not be
// re-established after the target was recreated. Fatal to the monitor.
type ErrFileWatchRearm struct {
	Cause error
}

func (e *ErrFileWatchRearm) Error() string {
	return fmt.Sprintf("failed to re-arm the file watch: %v", e.Cause)
}

func (e *ErrFileWatchRearm) Unwrap() error {
	return e.Cause
}
