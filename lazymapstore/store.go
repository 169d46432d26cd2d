// Package lazymapstore persists lazymap.Map snapshots to a bbolt
// bucket. spec.md scopes storage out of the core container; this
// package is the surrounding application code that fills that gap,
// following the lifecycle and Options shape of the teacher's own
// storage_bolt.go and db.go.
package lazymapstore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/mohitmv/lazymap"
	"github.com/mohitmv/lazymap/lazymapcodec"
)

// Options configures Open. Like the teacher's edb.Options, the fields
// that are always meaningful live directly on the struct; everything
// optional is layered on with functional Option values instead.
type Options struct {
	IsTesting bool
	MmapSize  int
}

type config[K comparable, V any] struct {
	logger     *slog.Logger
	valueCodec lazymapcodec.Codec[V]
	keyCodec   lazymapcodec.KeyCodec[K]
}

// Option configures optional Store behavior beyond Options.
type Option[K comparable, V any] func(*config[K, V])

// WithLogger overrides the default slog.Default() used for Store's
// session-level logging.
func WithLogger[K comparable, V any](logger *slog.Logger) Option[K, V] {
	return func(c *config[K, V]) { c.logger = logger }
}

// WithValueCodec overrides the default msgpack value codec.
func WithValueCodec[K comparable, V any](codec lazymapcodec.Codec[V]) Option[K, V] {
	return func(c *config[K, V]) { c.valueCodec = codec }
}

// WithKeyCodec overrides the default msgpack key codec.
func WithKeyCodec[K comparable, V any](codec lazymapcodec.KeyCodec[K]) Option[K, V] {
	return func(c *config[K, V]) { c.keyCodec = codec }
}

// Store durably persists one lazymap.Map[K, V] snapshot per bbolt
// bucket. It does not keep the live Map in memory between calls: each
// Snapshot/Restore round-trips through the fragment chain explicitly,
// so the caller stays in control of when a copy-on-write detach
// happens.
type Store[K comparable, V any] struct {
	bdb    *bbolt.DB
	bucket []byte
	cfg    config[K, V]
}

// Open opens (creating if necessary) a bbolt-backed Store rooted at
// path, storing snapshots under bucket.
func Open[K comparable, V any](path string, bucket string, opt Options, opts ...Option[K, V]) (*Store[K, V], error) {
	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.InitialMmapSize = 1024 * 1024 * 1024
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}

	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("lazymapstore: %w", err)
	}

	s := &Store[K, V]{
		bdb:    bdb,
		bucket: []byte(bucket),
		cfg: config[K, V]{
			logger:     slog.Default(),
			valueCodec: lazymapcodec.NewMsgpackCodec[V](),
			keyCodec:   lazymapcodec.MsgpackKeyCodec[K]{},
		},
	}
	for _, o := range opts {
		o(&s.cfg)
	}

	if err := s.bdb.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	}); err != nil {
		bdb.Close()
		return nil, fmt.Errorf("lazymapstore: %w", err)
	}

	return s, nil
}

// Close releases the underlying bbolt file handle.
func (s *Store[K, V]) Close() error {
	return s.bdb.Close()
}

// Bolt returns the underlying *bbolt.DB, for callers that need direct
// transaction access alongside Store.
func (s *Store[K, V]) Bolt() *bbolt.DB {
	return s.bdb
}

// Snapshot detaches a copy of m (collapsing its fragment chain, per
// spec.md's detach rationale) and overwrites the bucket with its
// logical view. The caller's handle m is left as it was.
func (s *Store[K, V]) Snapshot(m lazymap.Map[K, V]) error {
	detached := m.Copy()
	detached.Detach()

	sessionID := uuid.NewString()
	start := time.Now()
	err := s.bdb.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(s.bucket); err != nil {
			return err
		}
		b, err := tx.CreateBucket(s.bucket)
		if err != nil {
			return err
		}
		for it := detached.Begin(); !it.IsEnd(); it.Next() {
			kb := s.cfg.keyCodec.EncodeKey(it.Key())
			vb, err := s.cfg.valueCodec.Encode(it.Value())
			if err != nil {
				return fmt.Errorf("lazymapstore: encoding value for key %v: %w", it.Key(), err)
			}
			if err := b.Put(kb, vb); err != nil {
				return err
			}
		}
		return nil
	})
	s.cfg.logger.Debug("lazymapstore snapshot",
		slog.String("session_id", sessionID),
		slog.Int("size", detached.Size()),
		slog.Duration("elapsed", time.Since(start)),
		slog.Any("err", err))
	return err
}

// Restore rebuilds a fresh Map[K, V] from the bucket's current
// contents.
func (s *Store[K, V]) Restore() (lazymap.Map[K, V], error) {
	sessionID := uuid.NewString()
	m := lazymap.New[K, V]()
	err := s.bdb.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(kb, vb []byte) error {
			k, err := s.cfg.keyCodec.DecodeKey(kb)
			if err != nil {
				return fmt.Errorf("lazymapstore: decoding key: %w", err)
			}
			v, err := s.cfg.valueCodec.Decode(vb)
			if err != nil {
				return fmt.Errorf("lazymapstore: decoding value for key %v: %w", k, err)
			}
			m.InsertOrAssign(k, v)
			return nil
		})
	})
	s.cfg.logger.Debug("lazymapstore restore",
		slog.String("session_id", sessionID),
		slog.Int("size", m.Size()),
		slog.Any("err", err))
	if err != nil {
		var zero lazymap.Map[K, V]
		return zero, err
	}
	return m, nil
}
