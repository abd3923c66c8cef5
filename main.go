package main

import "github.com/orgbrain-labs/orgbrain/cmd"

func main() {
	cmd.Execute()
}
