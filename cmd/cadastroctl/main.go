package main

import (
	"os"

	"github.com/JakesDourado/Cadastro-FNR/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
