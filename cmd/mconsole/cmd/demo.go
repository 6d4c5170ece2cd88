package cmd

import (
	"context"
	"strconv"

	"github.com/msto63/mConsole/console"
	mconerror "github.com/msto63/mConsole/core/error"
	"github.com/msto63/mConsole/core/log"
)

// buildConsole creates the console both frontends dispatch against.
// The standalone binary has no host application behind it, so it
// registers a small demo method of its own; everything else comes from
// the builtin help and the REPL's self-registered targets.
func buildConsole(logger *log.Logger) *console.Console {
	con := console.New(console.Options{Logger: logger})
	_ = con.RegisterMethod("add", addMethod, "Adds together a sequence of numbers")
	return con
}

func addMethod(ctx context.Context, cmd *console.Command) error {
	if cmd.Argc() <= 1 {
		return mconerror.New("add method requires more than one argument").
			WithCode(mconerror.CodeInvalidInput).
			WithDetail("argc", cmd.Argc())
	}
	sum := int64(0)
	for _, tok := range cmd.Tokens {
		n, err := tok.Int()
		if err != nil {
			return err
		}
		sum += n
	}
	cmd.ReturnText = strconv.FormatInt(sum, 10)
	return nil
}
