package main

import "github.com/programmingwithjerry/AirBnB-clone-v4/commands"

// @title        HBNB API
// @version      1.0
// @description  REST API over the HBNB vacation rental catalog.
// @BasePath     /api/v1
func main() {
	commands.Execute()
}
