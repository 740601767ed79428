package main

import (
	"os"

	"github.com/SscSPs/rental_ledger/internal/commands"
)

// @title Rental Ledger API
// @version 1.0
// @description Double-entry journal entries for the car-rental ERP.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
