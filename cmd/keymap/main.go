// Command keymap prints the entity type descriptors served by the API.
//
//	keymap              all types
//	keymap -type spaces one type
//	keymap -creatable   types that can be created from the library panel
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"floorspace/internal/metadata"
)

func main() {
	typ := flag.String("type", "", "entity type to print")
	creatable := flag.Bool("creatable", false, "only print creatable types")
	flag.Parse()

	reg := metadata.Default()

	var out any
	switch {
	case *typ != "":
		def, ok := reg.Get(metadata.EntityType(*typ))
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown entity type %q\n", *typ)
			os.Exit(1)
		}
		out = def.Describe()
	case *creatable:
		out = describe(reg.Creatable())
	default:
		out = describe(reg.List())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}

func describe(defs []metadata.EntityDef) []metadata.Descriptor {
	out := make([]metadata.Descriptor, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.Describe())
	}
	return out
}
