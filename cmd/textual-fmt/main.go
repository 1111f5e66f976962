// Package main runs the textual-fmt localization and formatting command.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	textualfmtcmd "github.com/textualirc/support/internal/cmd/textualfmt"
	"github.com/textualirc/support/internal/platform/config"
)

func main() {
	flag.Usage = func() {
		_, _ = os.Stderr.WriteString(textualfmtcmd.Usage + "\n")
		flag.PrintDefaults()
	}
	cfg, err := textualfmtcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[TEXTUAL-FMT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := textualfmtcmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("textual-fmt: %v", err)
	}
}
