package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tqtools/tq/server"
)

var (
	addr     = flag.String("addr", ":8080", "listen address")
	root     = flag.String("root", ".", "directory table paths are resolved under")
	logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(1)
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := server.New(server.Config{Addr: *addr, Root: *root, Logger: log})
	if err := srv.Run(); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
