package main

import "github.com/alexschwind/ratemycourses/cmd/courserate/command"

func main() {
	command.Execute()
}
