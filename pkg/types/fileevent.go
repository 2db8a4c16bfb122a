// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

type WatchKind uint8

const (
	WatchKindUnknown   WatchKind = iota // Unknown
	WatchKindDirectory                  // Directory
	WatchKindFile                       // File
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=WatchKind -linecomment

// FileEvent is one classified filesystem event about the target file.
type FileEvent struct {
	// Description is the human readable classification of the event.
	Description string
	// Kind tells which logical watch produced the event.
	Kind WatchKind
	// Name is the directory entry the event concerns.
	// Empty for file-scoped events.
	Name string
	// Mask is the raw inotify event mask.
	Mask uint32
}
