package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. When rendering
// is disabled or fails, the raw markdown is printed as-is: the report must
// always reach the user.
func printMarkdown(doc string, plain bool) {
	if !plain {
		if out, err := glamour.Render(doc, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(doc)
}
