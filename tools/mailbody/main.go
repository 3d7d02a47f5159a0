package main

import (
	"github.com/zostay/go-mailbody/tools/mailbody/cmd"
)

func main() {
	cmd.Execute()
}
