package nonmain

import (
	"log"
	"os"
)

func main() {
	log.Fatalln("not a main package") // want `log.Fatalln\(\) should only be called from main function in main package`
	os.Exit(1)                        // want `os.Exit\(\) should only be called from main function in main package`
}
