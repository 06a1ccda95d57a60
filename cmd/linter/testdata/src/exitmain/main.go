package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 5 {
		log.Fatal("too many arguments")
	}
	os.Exit(0)
}
