package main

import "github.com/planportal/planportal/cmd/planportal/cmd"

func main() {
	cmd.Execute()
}
