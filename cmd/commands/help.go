package commands

import "fmt"

const help = `gcsfake is an in-memory Google Cloud Storage fake.

Usage:

	%s <command> [arguments]

Commands:

	run <config>       serve the storage API described by the config file
	events <config>    print object notifications read from the redis stream
	version            print the version
	help               print this help
`

func HandleHelp(args []string) {
	fmt.Printf(help, args[0]) //nolint
}
