package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mohitmv/lazymap/lazymapcodec"
	"github.com/mohitmv/lazymap/lazymapstore"
)

// server exposes a handful of debug endpoints over a
// *lazymapstore.Store[string, string]. It holds no in-memory Map
// between requests: every request re-Restores from the store, so each
// response reflects whatever was last written to it.
type server struct {
	store  *lazymapstore.Store[string, string]
	codec  lazymapcodec.Codec[string]
	logger *slog.Logger
}

func newServer(store *lazymapstore.Store[string, string], logger *slog.Logger) *server {
	return &server{
		store:  store,
		codec:  lazymapcodec.NewMsgpackCodec[string](),
		logger: logger,
	}
}

func (s *server) mux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/keys", s.logged(s.handleKeys))
	mux.HandleFunc("/depth", s.logged(s.handleDepth))
	mux.HandleFunc("/detach", s.logged(s.handleDetach))
	mux.HandleFunc("/export", s.logged(s.handleExport))
	return mux
}

func (s *server) logged(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)))
	}
}

func (s *server) handleKeys(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.Restore()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	keys := make([]string, 0, m.Size())
	for it := m.Begin(); !it.IsEnd(); it.Next() {
		keys = append(keys, it.Key())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(keys)
}

func (s *server) handleDepth(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.Restore()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"depth": m.Depth(),
		"size":  m.Size(),
	})
}

// handleDetach restores the stored map, detaches it (collapsing its
// fragment chain into a single fragment), and writes it straight back
// — a no-op from the caller's perspective on what keys exist, but it
// resets depth to zero for whatever gets layered on next.
func (s *server) handleDetach(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	m, err := s.store.Restore()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	m.Detach()
	if err := s.store.Snapshot(m); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"depth": m.Depth()})
}

// exportRow is the wire shape of one /export row: the key verbatim,
// the value pre-encoded through the server's lazymapcodec.Codec so
// importers don't need to know the store's in-process value type.
type exportRow struct {
	Key   string
	Value []byte
}

// handleExport restores the stored map and writes its full contents
// as a single msgpack-encoded []exportRow, with each row's Value
// already passed through lazymapcodec — the same codec lazymapstore
// itself uses for on-disk values.
func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.Restore()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	rows := make([]exportRow, 0, m.Size())
	for it := m.Begin(); !it.IsEnd(); it.Next() {
		encoded, err := s.codec.Encode(it.Value())
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		rows = append(rows, exportRow{Key: it.Key(), Value: encoded})
	}
	data, err := msgpack.Marshal(rows)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}
