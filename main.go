package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

const version = "0.1.0"

var (
	versionOption = flag.Bool("version", false, "dyngql version")
	operationName = flag.String("operation", "", "schema operation to invoke")
	variablesJSON = flag.String("variables", "{}", "operation variables as a JSON object")
	fieldsOption  = flag.String("fields", "", "comma-separated result fields (default: derived from the schema)")
)

func main() {
	flag.Parse()

	if *versionOption {
		fmt.Printf("dyngql v%s", version)

		return
	}

	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
