package main

import "github.com/timeworthapp/timeworth/cmd"

func main() {
	cmd.Execute()
}
