package main

import "github.com/yuriiter/flightbook/cmd"

func main() {
	cmd.Execute()
}
