package main

import (
	stdlog "log"
	"os"
)

func main() {
	run()
}

func run() {
	if len(os.Args) > 5 {
		stdlog.Fatalf("too many arguments: %d", len(os.Args)) // want `log.Fatalf\(\) should only be called from main function in main package`
	}
	os.Exit(2) // want `os.Exit\(\) should only be called from main function in main package`
}
