package main

import "github.com/yeisme/hellodemo/cmd"

func main() {
	cmd.Execute()
}
