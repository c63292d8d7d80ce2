package main

import "github.com/garyhouston/exifdir/exifctl/cmd"

func main() {
	cmd.Execute()
}
