package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/ledgerdb/ledgerdb/internal/admin"
	"github.com/ledgerdb/ledgerdb/internal/config"
	"github.com/ledgerdb/ledgerdb/internal/durability"
	"github.com/ledgerdb/ledgerdb/internal/housekeeping"
	"github.com/ledgerdb/ledgerdb/internal/logger"
	"github.com/ledgerdb/ledgerdb/internal/manager"
	"github.com/ledgerdb/ledgerdb/internal/transport/tcp"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0755); hasError(err) {
		logger.Fatal("creating data directory", "error", err)
	}

	logPath := cfg.LogPath
	if isEmpty(logPath) {
		logPath = filepath.Join(cfg.DataDir, "dump.aof")
	}

	snapshot, err := os.ReadFile(logPath)
	if hasError(err) && !errors.Is(err, os.ErrNotExist) {
		logger.Fatal("reading command log", "error", err)
	}

	engine, err := durability.NewFileEngine(logPath)
	if hasError(err) {
		logger.Fatal("opening command log", "error", err)
	}
	defer engine.Close()

	m, err := manager.New(engine, snapshot)
	if hasError(err) {
		logger.Fatal("recovering manager", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go housekeeping.Run(ctx, m)

	adminServer := admin.NewServer(m, func() admin.Snapshot {
		snapshotsTaken, recordsWritten, bytesWritten := m.Metrics()
		return admin.Snapshot{
			SnapshotsTaken: snapshotsTaken,
			RecordsWritten: recordsWritten,
			BytesWritten:   bytesWritten,
		}
	})
	go func() {
		if err := adminServer.Start(admin.Config{Address: cfg.AdminAddress}); hasError(err) {
			logger.Error("admin listener stopped", "error", err)
		}
	}()
	defer adminServer.Close()

	server := tcp.NewServer(m)
	defer server.Close()

	if err := server.Start(tcp.Config{Address: cfg.Address}); hasError(err) {
		logger.Fatal("tcp listener stopped", "error", err)
	}
}

func hasError(err error) bool {
	return err != nil
}

func isEmpty(data string) bool {
	return len(data) == 0
}
