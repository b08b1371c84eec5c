package main

import (
	"github.com/alecthomas/kong"
)

// CLI represents the command line interface structure
var CLI struct {
	Config  string `help:"Configuration file path" default:"modexpr.yaml" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose output"`
	Quiet   bool   `short:"q" help:"Suppress non-error output"`

	Validate   ValidateCmd   `cmd:"" help:"Validate a model expression"`
	Tokens     TokensCmd     `cmd:"" help:"Dump the token stream of an expression"`
	Components ComponentsCmd `cmd:"" help:"List the numbered components of an expression"`
	Format     FormatCmd     `cmd:"" help:"Print the canonical form of an expression"`
	Add        AddCmd        `cmd:"" help:"Insert a component into an expression"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a component from an expression"`
	Rename     RenameCmd     `cmd:"" help:"Rename a component of an expression"`
	Diff       DiffCmd       `cmd:"" help:"Locate the component changed between two expressions"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("modexpr"),
		kong.Description("Structural editor for spectral model combination expressions"),
		kong.UsageOnError(),
	)

	err := ctx.Run(&Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	})
	ctx.FatalIfErrorf(err)
}
