package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/cxcsds/modexpr"
	"github.com/cxcsds/modexpr/formatter"
	"github.com/cxcsds/modexpr/parser"
	"github.com/cxcsds/modexpr/tokenizer"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// setup loads the configuration and derives the parser options from it.
func (ctx *Context) setup() (*modexpr.Config, parser.Options, error) {
	config, err := modexpr.LoadConfig(ctx.Config)
	if err != nil {
		return nil, parser.Options{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	switch config.Output.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	opts := parser.Options{PreserveCase: config.Parser.PreserveCase}

	return config, opts, nil
}

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Expr string `arg:"" help:"Model expression to validate"`
}

func (v *ValidateCmd) Run(ctx *Context) error {
	_, opts, err := ctx.setup()
	if err != nil {
		return err
	}

	expr, err := parser.New(v.Expr, opts)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		color.Green("valid: %s (%d components)", expr.Text(), expr.ComponentCount())
	}

	return nil
}

// TokensCmd represents the tokens command
type TokensCmd struct {
	Expr string `arg:"" help:"Model expression to tokenize"`
}

func (t *TokensCmd) Run(ctx *Context) error {
	config, _, err := ctx.setup()
	if err != nil {
		return err
	}

	tokens, err := tokenizer.NewExprTokenizer(t.Expr, tokenizer.TokenizerOptions{
		SkipWhitespace: true,
		PreserveCase:   config.Parser.PreserveCase,
	}).AllTokens()
	if err != nil {
		return err
	}

	for _, token := range tokens {
		fmt.Printf("%3d  %-14s %s\n", token.Offset, token.Type, token.Value)
	}

	return nil
}

// ComponentsCmd represents the components command
type ComponentsCmd struct {
	Expr string `arg:"" help:"Model expression to analyze"`
}

func (c *ComponentsCmd) Run(ctx *Context) error {
	_, opts, err := ctx.setup()
	if err != nil {
		return err
	}

	expr, err := parser.New(c.Expr, opts)
	if err != nil {
		return err
	}

	for i, spec := range expr.ComponentSpecs() {
		loc, err := expr.GetComponentLocation(i + 1)
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %-20s [%d:%d]\n", spec.Sequence, spec.Content, loc.Start, loc.End)
	}

	return nil
}

// FormatCmd represents the format command
type FormatCmd struct {
	Expr       string `arg:"" help:"Model expression to format"`
	KeepParens bool   `help:"Keep redundant parentheses"`
}

func (f *FormatCmd) Run(ctx *Context) error {
	config, _, err := ctx.setup()
	if err != nil {
		return err
	}

	out, err := formatter.Format(f.Expr, formatter.Options{
		PreserveCase: config.Parser.PreserveCase,
		KeepParens:   f.KeepParens,
	})
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
