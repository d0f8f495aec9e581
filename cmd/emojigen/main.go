// Command emojigen turns a short prompt into a deterministic emoji card.
//
// Usage:
//
//	emojigen render sun beach party --seed 42 --out card.png
//	emojigen emojis coffee code --copy
//	emojigen keywords
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp()
	if err := a.run(a.rootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
