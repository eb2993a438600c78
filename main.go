// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/inkshim/inkshim/cmd/inkshim"

func main() {
	cmd.Execute()
}
