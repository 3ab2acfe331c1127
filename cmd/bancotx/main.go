package main

import (
	"os"

	"github.com/MonkeyShock/Banco-Transacoes/cmd/bancotx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
