package main

import (
	"fmt"
	"io"
	"os"

	"github.com/govalues/fraction"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Reduced fraction arithmetic over integers."
	app.HideVersion = true
	app.Action = demoCmd
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "Print the results of a fixed sequence of operations",
			Action: demoCmd,
		},
		{
			Name:   "calc",
			Usage:  "Apply one operation to two fractions",
			Action: calcCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:     "num1",
					Required: true,
					Usage:    "the numerator of the first operand",
				},
				&cli.Int64Flag{
					Name:  "den1",
					Value: 1,
					Usage: "the denominator of the first operand",
				},
				&cli.StringFlag{
					Name:    "op",
					Aliases: []string{"o"},
					Value:   "add",
					Usage:   "the operation, one of mul, quo, add, sub",
				},
				&cli.Int64Flag{
					Name:     "num2",
					Required: true,
					Usage:    "the numerator of the second operand",
				},
				&cli.Int64Flag{
					Name:  "den2",
					Value: 1,
					Usage: "the denominator of the second operand",
				},
			},
		},
	}
	return app
}

func demoCmd(c *cli.Context) error {
	demo(c.App.Writer)
	return nil
}

func demo(w io.Writer) {
	frac := fraction.MustNew(1, 2)
	fmt.Fprintf(w, "DEBUG_PRINT: %#v\n", frac)
	fmt.Fprintf(w, "STRING_METHOD: %v\n", frac)

	mulFrac := fraction.MustNew(2, 3)
	resFrac := frac.Mul(mulFrac)
	fmt.Fprintf(w, "MUL_RESULT: %v\n", resFrac)

	divFrac := resFrac.Quo(mulFrac)
	fmt.Fprintf(w, "DIV_RESULT: %v\n", divFrac)
}

func calcCmd(c *cli.Context) error {
	a, err := fraction.New(c.Int64("num1"), c.Int64("den1"))
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	b, err := fraction.New(c.Int64("num2"), c.Int64("den2"))
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	r, err := calc(a, b, c.String("op"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r)
	return nil
}

// calc reports a denominator that becomes zero, either through a zero divisor
// or through int64 wraparound, as an error instead of a panic.
func calc(a, b fraction.Fraction[int64], op string) (r fraction.Fraction[int64], err error) {
	defer func() {
		if p := recover(); p != nil {
			r = fraction.Fraction[int64]{}
			err = fmt.Errorf("computing [%v %v %v]: %w", a, op, b, fraction.ErrZeroDenominator)
		}
	}()
	switch op {
	case "mul":
		return a.Mul(b), nil
	case "quo":
		return a.Quo(b), nil
	case "add":
		return a.Add(b), nil
	case "sub":
		return a.Sub(b), nil
	default:
		return fraction.Fraction[int64]{}, fmt.Errorf("unknown operation %q", op)
	}
}
