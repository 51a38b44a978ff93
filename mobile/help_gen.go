// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program turns the package comment of the nock command, in
// ../doc.go, into the HTML page that mobile.Help returns.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"log"
	"os"
	"strings"
	"text/template"
)

const docFile = "../doc.go"

func main() {
	log.SetFlags(0)
	log.SetPrefix("help_gen: ")
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, docFile, nil, parser.ParseComments|parser.PackageClauseOnly)
	if err != nil {
		log.Fatal(err)
	}
	pkg, err := doc.NewFromFiles(fset, []*ast.File{file}, "robpike.io/nock")
	if err != nil {
		log.Fatal(err)
	}
	if pkg.Doc == "" {
		log.Fatalf("no package comment in %s", docFile)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, `<!-- generated from the package comment in robpike.io/nock/doc.go -->`)
	fmt.Fprintln(&buf, head)
	fmt.Fprintln(&buf, `<body>`)
	doc.ToHTML(&buf, pkg.Doc, nil)
	fmt.Fprintln(&buf, `</body></html>`)

	// The page is a raw string literal, which cannot hold a backquote.
	page := strings.ReplaceAll(buf.String(), "`", `"`)
	if err := tmpl.Execute(os.Stdout, page); err != nil {
		log.Fatal(err)
	}
}

var tmpl = template.Must(template.New("help.go").Parse("package mobile\n// GENERATED; DO NOT EDIT\n\nconst help = `{{.}}`\n"))

const head = `
<head>
    <title>nock</title>
    <style>
        body {
                font-family: Arial, sans-serif;
                font-size: 10pt;
                line-height: 1.3em;
                max-width: 950px;
        }

        pre {
                border-left: 3px solid #6A8CAF;
                font-family: monospace;
                font-size: 10pt;
                overflow: auto;
                padding: 4px 10px;
                white-space: pre;
        }
    </style>
</head>`
