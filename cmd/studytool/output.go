package main

import (
	"fmt"
	"os"

	"github.com/idr/studytool/internal/annotation"
)

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// printObject prints one annotation object's report block: the description
// followed by the tab-separated label/value map lines.
func printObject(obj *annotation.Object) {
	fmt.Printf("description:\n%s\n\n", obj.Description)
	fmt.Println("map:")
	for _, kv := range obj.Map {
		fmt.Printf("%s\t%s\n", kv.Label, kv.Value)
	}
}
