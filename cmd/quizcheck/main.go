package main

import (
	"os"

	"github.com/joho/godotenv"

	"quizcheck/internal/cli"
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
