// Command call2fa-stub serves a local imitation of the Call2FA API for
// development and integration testing.
//
// Accounts come from stub.accounts in the config file; generate a hash with
//
//	call2fa-stub -hash <password>
package main

import (
	"flag"
	"fmt"
	"os"

	"call2fa/internal/app"
	"call2fa/internal/auth"
	"call2fa/pkg/logger"
	"call2fa/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	hash := flag.String("hash", "", "print a bcrypt hash of the given password and exit")
	flag.Parse()

	if *hash != "" {
		h, err := auth.HashPassword(*hash)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	cfg := LoadConfiguration()
	if cfg.Stub.JWTSecret == "" {
		logger.GlobalLogger.Errorf("stub.jwt_secret (or STUB_JWT_SECRET) is required")
		os.Exit(1)
	}
	if len(cfg.Stub.Accounts) == 0 {
		logger.GlobalLogger.Printf("No accounts configured; every auth request will be rejected")
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Init(nil)

	NewServer(app.NewApp(cfg, logger.GlobalLogger)).Start()
}
