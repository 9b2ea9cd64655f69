// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jval parses a JSON file and prints the resulting value for
// inspection. With no argument it reads "test.json" in the current
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/creachadair/jval/ast"
	"github.com/tailscale/hujson"
)

var doHuJSON = flag.Bool("hujson", false,
	"Standardize JWCC input (comments, trailing commas) before parsing")

func main() {
	flag.Parse()

	path := "test.json"
	if flag.NArg() != 0 {
		path = flag.Arg(0)
	}
	v, err := parseFile(path)
	if err != nil {
		log.Fatalf("Parse %s: %v", path, err)
	}
	fmt.Println(v)
}

func parseFile(path string) (ast.Value, error) {
	if *doHuJSON {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, err
		}
		return ast.ParseBytes(std)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ast.Parse(f)
}
