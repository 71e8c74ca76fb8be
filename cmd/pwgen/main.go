package main

import (
	"os"
	"path/filepath"

	"github.com/vaultpass/pwgen-go/internal/cli"
	"github.com/vaultpass/pwgen-go/internal/crypto"
)

func main() {
	prog := filepath.Base(os.Args[0])
	os.Exit(cli.Run(prog, os.Args[1:], os.Stdout, os.Stderr, crypto.SecureSource{}))
}
