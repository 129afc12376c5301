package main

import "github.com/ceresdesign/ceres-sync/cmd"

func main() {
	cmd.Execute()
}
