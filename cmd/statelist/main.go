// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// StateList is a tool to maintain and publish official state bird lists.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/statelist/cmd/statelist/docx"
	"github.com/js-arias/statelist/cmd/statelist/html"
	"github.com/js-arias/statelist/cmd/statelist/update"
)

var app = &command.Command{
	Usage: "statelist <command> [<argument>...]",
	Short: "a tool to maintain official state bird lists",
}

func init() {
	app.Add(docx.Command)
	app.Add(html.Command)
	app.Add(update.Command)
}

func main() {
	app.Main()
}
