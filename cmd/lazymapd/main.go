// Command lazymapd serves a small debug HTTP surface over a
// lazymapstore-backed snapshot: keys, depth, and an on-demand detach,
// for inspecting a stored Map[K, V] without writing a client.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mohitmv/lazymap/lazymapstore"
)

func main() {
	dbPath := flag.String("db", "lazymapd.bolt", "path to the bbolt file backing the store")
	bucket := flag.String("bucket", "default", "bucket name holding the map snapshot")
	addr := flag.String("addr", "localhost:8080", "address to serve the debug HTTP surface on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store, err := lazymapstore.Open[string, string](*dbPath, *bucket, lazymapstore.Options{})
	if err != nil {
		logger.Error("failed to open store", slog.Any("err", err))
		os.Exit(1)
	}
	defer store.Close()

	srv := newServer(store, logger)
	logger.Info("lazymapd listening", slog.String("addr", *addr), slog.String("db", *dbPath))
	if err := http.ListenAndServe(*addr, srv.mux()); err != nil {
		logger.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func writeErr(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	fmt.Fprintln(w, err.Error())
}
