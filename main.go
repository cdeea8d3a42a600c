package main

import "github.com/twelve345/ingress-inventory/cmd"

func main() {
	cmd.Execute()
}
