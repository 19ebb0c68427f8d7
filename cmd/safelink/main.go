package main

import (
	"os"

	"safelink/backend/pkg/logger"
)

var version = "dev"

// @title        SafeLink API
// @version      1.0
// @description  Construction-site interpretation between Korean managers and foreign workers.
// @BasePath     /api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "module", "cli", "action", "execute", "result", "failed", "error", err)
		os.Exit(1)
	}
}
