// Renders the bundled sample resume with a chosen template and writes
// the HTML to disk. Handy for eyeballing skins without running the
// server:
//
//	go run ./tools -template timeline -out sample.html
package main

import (
	"flag"
	"fmt"
	"os"

	"resumeforge/internal/model"
	"resumeforge/internal/render"
)

func main() {
	templateID := flag.String("template", render.DefaultTemplateID, "template id")
	out := flag.String("out", "sample.html", "output path")
	flag.Parse()

	registry := render.NewRegistry()
	if !registry.Known(*templateID) {
		fmt.Fprintf(os.Stderr, "unknown template %q, using default\n", *templateID)
	}

	c := model.DefaultCustomization()
	c.TemplateID = *templateID
	doc := registry.Render(model.SampleResume(), c)

	if err := os.WriteFile(*out, []byte(render.HTML(doc)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
