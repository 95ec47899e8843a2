package main

import "github.com/masmgr/changelog-go/cmd"

func main() {
	cmd.Run()
}
