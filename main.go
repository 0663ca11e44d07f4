package main

import "github.com/LegacyCodeHQ/solresolve/cmd"

func main() {
	cmd.Execute()
}
