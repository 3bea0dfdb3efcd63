package main

import "github.com/foodcourier/marketplace/cmd/marketplace/cmd"

func main() {
	cmd.Execute()
}
