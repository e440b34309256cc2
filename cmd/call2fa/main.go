// Command call2fa is an example caller of the Call2FA client.
//
// Usage:
//
//	call2fa call -phone +380631010121 [-callback https://example.com/hook]
//	call2fa call-digits -phone +380631010121 -pool 42 [-six]
//	call2fa call-code -phone +380631010121 -code 1234 -lang uk
//	call2fa info -id 95818344
//
// Credentials and endpoint come from configs/config.yaml (CONFIG_PATH), a
// .env file, or CALL2FA_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	apperrors "call2fa/internal/errors"
	"call2fa/pkg/call2fa"
	"call2fa/pkg/config"
	"call2fa/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return apperrors.ExitInvalidArgument
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return apperrors.ExitInternal
	}
	logger.InitLogger(stderr, cfg.Log.Level)

	cmd, err := parseCommand(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return apperrors.ExitInvalidArgument
	}

	client, err := call2fa.NewClient(ctx, cfg.Client.Login, cfg.Client.Password,
		call2fa.WithBaseURL(cfg.Client.BaseURI),
		call2fa.WithVersion(cfg.Client.Version),
		call2fa.WithTimeout(cfg.Client.Timeout),
		call2fa.WithLogger(logger.GlobalLogger),
	)
	if err != nil {
		return fail(stderr, err)
	}

	resp, err := cmd.exec(ctx, client)
	if err != nil {
		return fail(stderr, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		fmt.Fprintf(stderr, "Failed to print response: %v\n", err)
		return apperrors.ExitInternal
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	appErr := apperrors.MapError(err)
	logger.GlobalLogger.Errorf("Command failed: code=%s, error=%s", appErr.Code, appErr.TechnicalMessage)
	fmt.Fprintln(stderr, "Something went wrong:")
	fmt.Fprintln(stderr, appErr.UserMessage)
	return appErr.ExitCode
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: call2fa <call|call-digits|call-code|info> [flags]")
}
