// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/gamo/vocab/cmd/vocab"

func main() {
	cmd.Execute()
}
