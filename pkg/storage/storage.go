// Package storage persists link records in pebble. Each record is keyed by
// the link's own handle and holds the codec's flat encoding of its targets.
package storage

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/ssargent/freyjalink/pkg/codec"
	"github.com/ssargent/freyjalink/pkg/handle"
	"github.com/ssargent/freyjalink/pkg/logging"
)

// ErrNotFound is returned when no link is stored under a handle
var ErrNotFound = errors.New("storage: link not found")

// ErrNoGenerator is returned by Create when the factory cannot mint handles
var ErrNoGenerator = errors.New("storage: handle factory cannot generate handles")

// Options configures a LinkStorage
type Options struct {
	Path    string         // Directory for the pebble store
	Factory handle.Factory // Handle factory; defaults to KSUIDs
	Sync    bool           // Fsync every write
	Logger  *slog.Logger   // Defaults to a discarding logger
	Metrics *Metrics       // Optional
}

// LinkStorage stores links in pebble using a LinkCodec
type LinkStorage struct {
	db      *pebble.DB
	codec   *codec.LinkCodec
	factory handle.Factory
	write   *pebble.WriteOptions
	logger  *slog.Logger
	metrics *Metrics
}

// Open opens or creates the store at opts.Path
func Open(opts Options) (*LinkStorage, error) {
	if opts.Factory == nil {
		opts.Factory = handle.KSUIDFactory{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	c, err := codec.NewLinkCodec(opts.Factory)
	if err != nil {
		return nil, err
	}

	db, err := pebble.Open(opts.Path, &pebble.Options{
		Logger: logging.PebbleLogger{Logger: opts.Logger},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "storage: open %s", opts.Path)
	}

	write := pebble.NoSync
	if opts.Sync {
		write = pebble.Sync
	}

	opts.Logger.Info("link storage opened", "path", opts.Path, "handle_size", c.HandleSize(), "sync", opts.Sync)

	return &LinkStorage{
		db:      db,
		codec:   c,
		factory: opts.Factory,
		write:   write,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}, nil
}

// Codec returns the codec used for link values
func (s *LinkStorage) Codec() *codec.LinkCodec {
	return s.codec
}

// Create stores link under a freshly generated handle
func (s *LinkStorage) Create(link []handle.Handle) (handle.Handle, error) {
	gen, ok := s.factory.(handle.Generator)
	if !ok {
		return nil, ErrNoGenerator
	}
	id := gen.New()
	if err := s.Update(id, link); err != nil {
		return nil, err
	}
	return id, nil
}

// Read returns the link stored under id
func (s *LinkStorage) Read(id handle.Handle) ([]handle.Handle, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "%s", id)
		}
		return nil, errors.Wrapf(err, "storage: read %s", id)
	}
	defer closer.Close()

	// Handles are copied out of data, which is only valid until closer runs.
	link, err := s.codec.Decode(data)
	if err != nil {
		s.observeMalformed(id, len(data), err)
		return nil, errors.Wrapf(err, "storage: link %s", id)
	}
	s.metrics.observeDecode(len(link))
	return link, nil
}

// Update stores link under id, replacing any previous value
func (s *LinkStorage) Update(id handle.Handle, link []handle.Handle) error {
	data, err := s.codec.Encode(link)
	if err != nil {
		return errors.Wrapf(err, "storage: encode link %s", id)
	}
	if err := s.db.Set(id.Bytes(), data, s.write); err != nil {
		return errors.Wrapf(err, "storage: write %s", id)
	}
	s.metrics.observeEncode(len(link))
	return nil
}

// Delete removes the link stored under id. Deleting a missing link is not an error.
func (s *LinkStorage) Delete(id handle.Handle) error {
	if err := s.db.Delete(id.Bytes(), s.write); err != nil {
		return errors.Wrapf(err, "storage: delete %s", id)
	}
	return nil
}

// Scan calls fn for every stored link in key order. Iteration stops at the
// first error from fn or from decoding.
func (s *LinkStorage) Scan(fn func(id handle.Handle, link []handle.Handle) error) error {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return errors.Wrap(err, "storage: new iterator")
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := s.factory.MakeHandle(iter.Key(), 0)
		if err != nil {
			return errors.Wrap(err, "storage: decode key")
		}
		value := iter.Value()
		link, err := s.codec.DecodeWindow(codec.WholeWindow(value))
		if err != nil {
			s.observeMalformed(id, len(value), err)
			return errors.Wrapf(err, "storage: link %s", id)
		}
		s.metrics.observeDecode(len(link))
		if err := fn(id, link); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close flushes and closes the underlying store
func (s *LinkStorage) Close() error {
	s.logger.Info("link storage closing")
	return s.db.Close()
}

func (s *LinkStorage) observeMalformed(id handle.Handle, size int, err error) {
	s.logger.Warn("malformed link record", "handle", id.String(), "size", size, "handle_size", s.codec.HandleSize(), "error", err)
	s.metrics.observeMalformed()
}
