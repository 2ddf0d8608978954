package main

import "github.com/killallgit/secondlife-api/cmd"

// @title           Second Life API
// @version         1.0.0
// @description     Finds thrift stores, donation centers and clothing swaps near a location and summarizes them
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/secondlife-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
