package main

import "github.com/ADITYATHUNGAK/Ai-For-Healthcare/cmd"

func main() {
	cmd.Execute()
}
