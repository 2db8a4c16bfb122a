// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

const (
	CheckDocumentString = `
Go to check documentation
https://pkg.go.dev/github.com/black-desk/filemon
for some help.
`
	FileMonCfgPath = "/etc/filemon/config.yaml"
)
