package main

import "github.com/kontentmcp/kontentmcp/cmd"

func main() {
	cmd.Execute()
}
