package main

import "github.com/oshokin/buildstamp/cmd/buildstamp/cmd"

func main() {
	cmd.Execute()
}
