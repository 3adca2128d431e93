// entry point of the application
package main

import (
	"os"

	"ytclip/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
