package main

import (
	"fmt"
	"os"

	"github.com/hlop3z/tabula/internal/ui"
)

// CommandInfo describes one command line in the categorized help.
type CommandInfo struct {
	Name        string
	Description string
}

// CommandCategory groups related commands under a titled section.
type CommandCategory struct {
	Title    string
	Commands []CommandInfo
}

// FlagInfo describes one global flag line in the categorized help.
type FlagInfo struct {
	Flag        string
	Description string
}

// renderCategoryHelp prints the styled root help: title, summary, command
// categories, and global flags.
func renderCategoryHelp(title, summary string, categories []CommandCategory, flags []FlagInfo) {
	fmt.Println(ui.Header(title))
	fmt.Println(ui.Dim(summary))
	fmt.Println()

	for _, cat := range categories {
		fmt.Println(ui.Primary(cat.Title))
		for _, c := range cat.Commands {
			fmt.Printf("  %-10s %s\n", c.Name, c.Description)
		}
		fmt.Println()
	}

	fmt.Println(ui.Primary("Global Flags"))
	for _, f := range flags {
		fmt.Printf("  %-20s %s\n", f.Flag, f.Description)
	}
	fmt.Println()
	fmt.Println(ui.Help("Run 'tabula <command> --help' for command details"))
}

// HelpMessage represents a structured help message for error conditions.
type HelpMessage struct {
	Title string   // Error title (e.g. "Missing plural argument")
	Lines []string // Help content lines
}

// helpMessages contains data-driven help messages for common error conditions.
var helpMessages = map[string]HelpMessage{
	"usage_gen": {
		Title: "Wrong number of arguments",
		Lines: []string{
			"Usage:",
			"  tabula gen <Module.Name> <plural> [attribute...]",
			"",
			"Examples:",
			"  tabula gen Blog.Post blog_posts title:string views:integer",
			"  tabula gen Accounts.User users email:string:unique role_id:references:roles",
			"",
			"Tips:",
			"  - The module name is dotted and capitalized: Blog.Post",
			"  - The plural is the snake_case table name: blog_posts",
			"  - Attributes are name:type with optional :unique",
		},
	},
	"no_project": {
		Title: "Not a tabula project directory",
		Lines: []string{
			"To fix this, do ONE of the following:",
			"",
			"  1. Initialize a new project here:",
			"     tabula init",
			"",
			"  2. Point at an existing config file:",
			"     tabula gen --config /path/to/tabula.yaml ...",
		},
	},
}

// printHelp prints a help message by key.
func printHelp(key string) {
	msg, ok := helpMessages[key]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: Unknown help message key: %s\n", key)
		return
	}

	fmt.Fprintln(os.Stderr, ui.Error("Error")+": "+msg.Title)
	fmt.Fprintln(os.Stderr)

	for _, line := range msg.Lines {
		fmt.Fprintln(os.Stderr, line)
	}
}
