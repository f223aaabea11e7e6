package main

import "arise/cmd/arise/root"

func main() {
	root.Execute()
}
