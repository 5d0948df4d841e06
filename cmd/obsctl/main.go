package main

import (
	"github.com/obsbank/obsctl/cmd/obsctl/cli"
)

func main() {
	cli.InitAndExecute()
}
