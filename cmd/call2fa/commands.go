package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"call2fa/pkg/call2fa"
)

// command is a parsed subcommand ready to run against a client.
type command struct {
	name string
	exec func(ctx context.Context, c *call2fa.Client) (call2fa.Response, error)
}

// parseCommand parses the subcommand and its flags. Empty required values are
// left for the client to reject, so the CLI reports them the same way.
func parseCommand(args []string) (*command, error) {
	name, rest := args[0], args[1:]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch name {
	case "call":
		phone := fs.String("phone", "", "phone number to call")
		callback := fs.String("callback", "", "URL for status callbacks")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		return &command{name: name, exec: func(ctx context.Context, c *call2fa.Client) (call2fa.Response, error) {
			return c.Call(ctx, *phone, *callback)
		}}, nil
	case "call-digits":
		phone := fs.String("phone", "", "phone number to call")
		pool := fs.String("pool", "", "number pool id")
		six := fs.Bool("six", false, "use six-digit mode")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		return &command{name: name, exec: func(ctx context.Context, c *call2fa.Client) (call2fa.Response, error) {
			return c.CallViaLastDigits(ctx, *phone, *pool, *six)
		}}, nil
	case "call-code":
		phone := fs.String("phone", "", "phone number to call")
		code := fs.String("code", "", "verification code to dictate")
		lang := fs.String("lang", "", "language of the dictated code")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		return &command{name: name, exec: func(ctx context.Context, c *call2fa.Client) (call2fa.Response, error) {
			return c.CallWithCode(ctx, *phone, *code, *lang)
		}}, nil
	case "info":
		id := fs.String("id", "", "call id")
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		return &command{name: name, exec: func(ctx context.Context, c *call2fa.Client) (call2fa.Response, error) {
			return c.Info(ctx, *id)
		}}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}
}
