package main

import "profile-exporter/cmd"

func main() {
	cmd.Execute()
}
