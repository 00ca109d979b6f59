package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/ui"
	"github.com/hlop3z/tabula/internal/validate"
)

// printCLIError prints a terminal error in a consistent, readable shape.
// Structured tabula errors get their code, context, and help lines; anything
// else falls back to the plain message.
func printCLIError(err error) {
	if err == nil {
		return
	}

	// Usage errors from cobra argument validation get the full usage help.
	if strings.Contains(err.Error(), "requires at least") {
		printHelp("usage_gen")
		return
	}

	var ve validate.ValidationErrors
	if errors.As(err, &ve) {
		fmt.Fprintln(os.Stderr, ui.Error("Error")+": invalid attribute specification")
		fmt.Fprintln(os.Stderr)
		for _, e := range ve {
			var tbe *tberr.Error
			if errors.As(e, &tbe) {
				fmt.Fprintln(os.Stderr, "  "+ui.Failed(tbe.GetMessage()))
				printContext(tbe, "    ")
			} else {
				fmt.Fprintln(os.Stderr, "  "+ui.Failed(e.Error()))
			}
		}
		return
	}

	var tbe *tberr.Error
	if errors.As(err, &tbe) {
		fmt.Fprintln(os.Stderr, ui.Error("Error")+": "+tbe.GetMessage())
		printContext(tbe, "  ")
		return
	}

	fmt.Fprintln(os.Stderr, ui.Error("Error")+": "+err.Error())
}

// printContext prints one error's context and help lines, indented.
func printContext(tbe *tberr.Error, indent string) {
	ctx := tbe.GetContext()
	for _, key := range []string{"argument", "token", "type", "name", "got", "path"} {
		if v, ok := ctx[key]; ok {
			fmt.Fprintf(os.Stderr, "%s%s: %v\n", indent, key, v)
		}
	}
	if v, ok := ctx["suggestion"]; ok {
		fmt.Fprintln(os.Stderr, indent+ui.Note("suggestion")+": "+fmt.Sprint(v))
	}
	for _, h := range tbe.Helps() {
		fmt.Fprintln(os.Stderr, indent+ui.Help("help")+": "+h)
	}
}
