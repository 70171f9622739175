// vestactl runs VestaCP panel commands from the command line.
package main

import (
	"terraform-provider-vestacp/internal/cli"
)

func main() {
	cli.Execute()
}
