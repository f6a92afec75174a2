package slab

import (
	"errors"
	"fmt"
	"os"

	"github.com/nvellum/slabdb/dirty"
	"github.com/nvellum/slabdb/file"
	"github.com/nvellum/slabdb/internal/format"
)

// AttachFileOptions configures AttachFile. The zero value opens (or creates)
// an unshared, writable database with full validation and no encryption.
type AttachFileOptions struct {
	Shared          bool
	ReadOnly        bool
	NoCreate        bool
	SkipValidate    bool
	EncryptionKey   []byte
	ServerSyncMode  bool
	CheckSyncMode   bool // when true, mismatched ServerSyncMode on an existing file is an error
}

// AttachFile opens path, bootstrapping an empty database if the file is new
// and writable, maps it read-only, and validates the header unless
// SkipValidate is set. On any failure the store is left detached.
func (s *Store) AttachFile(path string, opts AttachFileOptions) (Ref, error) {
	if s.IsAttached() {
		return 0, ErrAlreadyAttached
	}

	mode := file.ReadWrite
	if opts.ReadOnly {
		mode = file.ReadOnly
	}
	if opts.NoCreate && !opts.ReadOnly {
		if _, err := os.Stat(path); err != nil {
			return 0, fmt.Errorf("slab: attach_file: %w", err)
		}
	}

	f, err := file.Open(path, mode)
	if err != nil {
		return 0, fmt.Errorf("slab: attach_file: %w", err)
	}

	ref, attachErr := s.attachOpenedFile(f, opts)
	if attachErr != nil {
		_ = f.Close()
		return 0, attachErr
	}
	return ref, nil
}

func (s *Store) attachOpenedFile(f file.File, opts AttachFileOptions) (Ref, error) {
	sz, err := f.Size()
	if err != nil {
		return 0, fmt.Errorf("slab: attach_file: %w", err)
	}

	justCreated := false
	if sz == 0 {
		if opts.ReadOnly {
			return 0, fmt.Errorf("slab: attach_file: %w: empty file opened read-only", ErrInvalidDatabase)
		}
		var hdr [format.HeaderSize]byte
		format.PutEmptyHeader(hdr[:], opts.ServerSyncMode)
		if err := f.Prealloc(format.InitialFileSize); err != nil {
			return 0, fmt.Errorf("slab: attach_file: %w", err)
		}
		if err := f.Write(0, hdr[:]); err != nil {
			return 0, fmt.Errorf("slab: attach_file: %w", err)
		}
		if err := f.Sync(); err != nil {
			return 0, fmt.Errorf("slab: attach_file: %w", err)
		}
		sz = format.InitialFileSize
		justCreated = true
	}

	data, err := f.Map(sz)
	if err != nil {
		return 0, fmt.Errorf("slab: attach_file: %w", err)
	}

	res, err := format.Validate(data, opts.Shared, opts.SkipValidate, opts.CheckSyncMode && !justCreated, opts.ServerSyncMode)
	if err != nil {
		return 0, fmt.Errorf("slab: attach_file: %w: %v", ErrInvalidDatabase, err)
	}

	if opts.EncryptionKey != nil {
		if err := f.SetEncryptionKey(opts.EncryptionKey); err != nil {
			if errors.Is(err, file.ErrDecryptionFailed) {
				return 0, fmt.Errorf("slab: attach_file: %w: %w", ErrInvalidDatabase, ErrDecryptionFailed)
			}
			return 0, fmt.Errorf("slab: attach_file: %w", err)
		}
	}

	hb := file.NewHeaderBuffer(f)
	if err := hb.LoadFrom(data); err != nil {
		return 0, fmt.Errorf("slab: attach_file: %w", err)
	}

	s.f = f
	s.hb = hb
	s.dt = dirty.NewTracker(hb)
	s.data = data
	s.baseline = sz
	s.fileFormat = res.FileFormat
	s.selectSlot = res.SelectSlot
	s.streaming = res.Streaming
	s.shared = opts.Shared
	s.mode = UnsharedFile
	if opts.Shared {
		s.mode = SharedFile
	}
	s.slabs = nil
	s.mutableFree = nil
	s.readOnlyFree = nil
	s.state = StateInvalid

	return Ref(res.TopRef), nil
}

// AttachBuffer attaches to a caller-owned buffer that is not freed on
// Detach. The buffer is validated exactly like a file's contents.
func (s *Store) AttachBuffer(data []byte) (Ref, error) {
	if s.IsAttached() {
		return 0, ErrAlreadyAttached
	}
	res, err := format.Validate(data, false, false, false, false)
	if err != nil {
		return 0, fmt.Errorf("slab: attach_buffer: %w: %v", ErrInvalidDatabase, err)
	}
	s.data = data
	s.baseline = int64(len(data))
	s.fileFormat = res.FileFormat
	s.selectSlot = res.SelectSlot
	s.streaming = res.Streaming
	s.mode = UsersBuffer
	s.slabs = nil
	s.mutableFree = nil
	s.readOnlyFree = nil
	s.state = StateInvalid
	return Ref(res.TopRef), nil
}

// AttachEmpty attaches to a brand new, in-memory, owned empty database — no
// file, no caller buffer. The store starts Clean since there is nothing yet
// to reconcile the free lists against.
func (s *Store) AttachEmpty() error {
	if s.IsAttached() {
		return ErrAlreadyAttached
	}
	buf := make([]byte, format.HeaderSize)
	format.PutEmptyHeader(buf, false)
	s.ownedBuf = buf
	s.data = buf
	s.baseline = int64(len(buf))
	s.fileFormat = format.CurrentFileFormat
	s.selectSlot = 0
	s.streaming = false
	s.mode = OwnedBuffer
	s.slabs = nil
	s.mutableFree = nil
	s.readOnlyFree = nil
	s.state = StateClean
	return nil
}

// Detach releases whatever the current AttachMode owns and returns the store
// to its zero, unattached state. Idempotent.
func (s *Store) Detach() error {
	var err error
	switch s.mode {
	case None:
		return nil
	case OwnedBuffer:
		s.ownedBuf = nil
	case UsersBuffer:
		// borrowed; nothing to release
	case UnsharedFile, SharedFile:
		if s.f != nil {
			err = s.f.Close()
		}
	}
	s.f = nil
	s.hb = nil
	s.dt = nil
	s.data = nil
	s.baseline = 0
	s.slabs = nil
	s.mutableFree = nil
	s.readOnlyFree = nil
	s.mode = None
	s.state = StateInvalid
	if err != nil {
		return fmt.Errorf("slab: detach: %w", err)
	}
	return nil
}
