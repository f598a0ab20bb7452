package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mshamp4/ConnectFourRemote/internal/config"
	"github.com/mshamp4/ConnectFourRemote/internal/platform/tui"
	"github.com/mshamp4/ConnectFourRemote/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Connect Four SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with its own game against the
computer or a second player at the same keyboard. Sessions never see each
other's boards; finished games from every session go to the same results
database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key under $XDG_DATA_HOME/connectfour

Examples:
  connectfour serve                           # Listen on :23234 with auto-generated key
  connectfour serve --ssh :2222               # Listen on port 2222
  connectfour serve --host-key ./my_host_key  # Use specific host key
  connectfour serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, "connectfour-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hostKey := flagHostKey
	if hostKey == "" {
		if hostKey, err = config.HostKeyPath(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	var store *storage.Store
	if dbPath, err := cfg.DBPath(); err != nil {
		logger.Warn("no results database", "error", err)
	} else if store, err = storage.Open(dbPath); err != nil {
		logger.Warn("could not open results database", "path", dbPath, "error", err)
		store = nil // Continue without storage
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: hostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Connect Four SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
