package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/cxcsds/modexpr/parser"
)

// Sentinel errors
var (
	ErrUnknownOperator = errors.New("operator must be + or *")
)

// parseOp maps the operator flag to its byte form
func parseOp(op string) (byte, error) {
	switch op {
	case "+":
		return '+', nil
	case "*":
		return '*', nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// AddCmd represents the add command
type AddCmd struct {
	Expr   string `arg:"" help:"Model expression to edit"`
	Name   string `arg:"" help:"Component to insert (word or word{path})"`
	Before int    `help:"Sequence number to insert before (0 appends at the end)" default:"0"`
	Op     string `help:"Combining operator" default:"+" enum:"+,*"`
}

func (a *AddCmd) Run(ctx *Context) error {
	_, opts, err := ctx.setup()
	if err != nil {
		return err
	}

	op, err := parseOp(a.Op)
	if err != nil {
		return err
	}

	expr, err := parser.New(a.Expr, opts)
	if err != nil {
		return err
	}

	seq := a.Before
	if seq == 0 {
		seq = expr.ComponentCount() + 1
	}

	if err := expr.InsertWordBySequence(seq, a.Name, op); err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("inserted %s before sequence %d", a.Name, a.Before)
	}
	fmt.Println(expr.Text())

	return nil
}

// DeleteCmd represents the delete command
type DeleteCmd struct {
	Expr string `arg:"" help:"Model expression to edit"`
	Seq  int    `arg:"" help:"Sequence number of the component to delete"`
}

func (d *DeleteCmd) Run(ctx *Context) error {
	_, opts, err := ctx.setup()
	if err != nil {
		return err
	}

	expr, err := parser.New(d.Expr, opts)
	if err != nil {
		return err
	}

	if err := expr.DeleteWordBySequence(d.Seq); err != nil {
		return err
	}

	if expr.Empty() {
		if !ctx.Quiet {
			color.Yellow("expression is now empty")
		}
		return nil
	}
	fmt.Println(expr.Text())

	return nil
}

// RenameCmd represents the rename command
type RenameCmd struct {
	Expr string `arg:"" help:"Model expression to edit"`
	Seq  int    `arg:"" help:"Sequence number of the component to rename"`
	Name string `arg:"" help:"New component name (word or word{path})"`
}

func (r *RenameCmd) Run(ctx *Context) error {
	_, opts, err := ctx.setup()
	if err != nil {
		return err
	}

	expr, err := parser.New(r.Expr, opts)
	if err != nil {
		return err
	}

	if err := expr.ReplaceWordBySequence(r.Seq, r.Name); err != nil {
		return err
	}

	fmt.Println(expr.Text())

	return nil
}

// DiffCmd represents the diff command
type DiffCmd struct {
	Old string `arg:"" help:"Expression before the edit"`
	New string `arg:"" help:"Expression after the edit"`
}

func (d *DiffCmd) Run(ctx *Context) error {
	_, opts, err := ctx.setup()
	if err != nil {
		return err
	}

	oldExpr, err := parser.New(d.Old, opts)
	if err != nil {
		return fmt.Errorf("old expression: %w", err)
	}

	newExpr, err := parser.New(d.New, opts)
	if err != nil {
		return fmt.Errorf("new expression: %w", err)
	}

	start, end := parser.FindWordDifference(oldExpr, newExpr)
	if start == 0 {
		if !ctx.Quiet {
			color.Green("expressions match")
		}
		return nil
	}

	if start == end {
		fmt.Printf("component %d changed\n", start)
	} else {
		fmt.Printf("components %d-%d changed\n", start, end)
	}

	if parser.TestEditOperation(oldExpr, newExpr, start) {
		if ctx.Verbose {
			color.Blue("edit touches exactly one component")
		}
		return nil
	}

	color.Yellow("edit changes more than one component")

	return nil
}
