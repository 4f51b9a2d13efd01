package task

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/rtd/internal/paths"
	"github.com/sirupsen/logrus"
)

// FileName is the name of the storage file inside the home directory.
const FileName = ".rtd.csv"

// DefaultPath returns the storage file path inside the home directory.
func DefaultPath() (string, error) {
	home, err := paths.HomeDir()
	if err != nil {
		return "", EnvironmentError(err)
	}
	return filepath.Join(home, FileName), nil
}

// Store provides access to the task records in a single file.
// Every method opens the file, does its work, and closes it again.
type Store struct {
	path   string
	logger logrus.FieldLogger
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Logger receives debug events such as skipped records.
	// If nil, logging is discarded.
	Logger logrus.FieldLogger
}

// Record is a decoded task together with its position in the file.
type Record struct {
	Task Task
	// Offset is the byte offset of the first byte of the record line.
	Offset int64
	// Length is the encoded line length, not counting the newline.
	Length int
	// Terminated reports whether a newline follows the record.
	Terminated bool
}

// OpenOrCreate opens the store at path, creating the file with a header
// line if it does not exist yet.
func OpenOrCreate(path string, opts OpenOptions) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	store := &Store{path: path, logger: logger.WithField("path", path)}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := store.create(); err != nil {
			return nil, err
		}
		store.logger.Debug("created storage file")
	case err != nil:
		return nil, ioError("stat", err)
	default:
		f, err := os.OpenFile(path, os.O_RDWR, 0)
		if err != nil {
			return nil, ioError("open", err)
		}
		if err := f.Close(); err != nil {
			return nil, ioError("open", err)
		}
	}

	return store, nil
}

func (s *Store) create() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return ioError("create parent dir", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o644)
	if err != nil {
		return ioError("create", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Header + "\n"); err != nil {
		return ioError("write header", err)
	}
	return ioError("create", f.Close())
}

// Path returns the storage file path.
func (s *Store) Path() string {
	return s.path
}

// withFile runs fn with the storage file opened for reading and writing.
func (s *Store) withFile(op string, fn func(f *os.File) error) error {
	f, err := os.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		return ioError(op, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	return ioError(op, f.Close())
}

// Append writes line plus a newline at the end of the file. If the file
// does not end in a newline, one is written first so the previous record
// stays intact.
func (s *Store) Append(line string) error {
	return s.withFile("append", func(f *os.File) error {
		end, err := f.Seek(0, io.SeekEnd)
		if err != nil {
			return ioError("append", err)
		}
		if end > 0 {
			last := make([]byte, 1)
			if _, err := f.ReadAt(last, end-1); err != nil {
				return ioError("append", err)
			}
			if last[0] != '\n' {
				line = "\n" + line
			}
		}
		if _, err := f.WriteString(line + "\n"); err != nil {
			return ioError("append", err)
		}
		return nil
	})
}

// ReadAllText returns the whole file content.
func (s *Store) ReadAllText() (string, error) {
	var content string
	err := s.withFile("read", func(f *os.File) error {
		data, err := io.ReadAll(f)
		if err != nil {
			return ioError("read", err)
		}
		content = string(data)
		return nil
	})
	return content, err
}

// Records decodes every record in file order. Lines that fail to decode,
// including the header, are skipped but still advance the offsets.
func (s *Store) Records() ([]Record, error) {
	content, err := s.ReadAllText()
	if err != nil {
		return nil, err
	}
	return s.scan(content), nil
}

func (s *Store) scan(content string) []Record {
	var records []Record
	var offset int64
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lineOffset := offset
		offset += int64(len(line)) + 1

		// The final element is whatever follows the last newline.
		if i == len(lines)-1 && line == "" {
			break
		}

		t, err := Decode(line)
		if err != nil {
			if !(i == 0 && line == Header) {
				s.logger.WithFields(logrus.Fields{
					"line":  i + 1,
					"error": err,
				}).Debug("skipping undecodable record")
			}
			continue
		}
		records = append(records, Record{
			Task:       t,
			Offset:     lineOffset,
			Length:     len(line),
			Terminated: i < len(lines)-1,
		})
	}
	return records
}

// Tasks returns every decodable task in file order.
func (s *Store) Tasks() ([]Task, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, record.Task)
	}
	return tasks, nil
}

// FindByID returns the first record whose task has the given ID.
func (s *Store) FindByID(id uint32) (Record, error) {
	records, err := s.Records()
	if err != nil {
		return Record{}, err
	}
	for _, record := range records {
		if record.Task.ID == id {
			return record, nil
		}
	}
	return Record{}, notFoundError("find", id)
}

// Splice removes deleteCount bytes starting at offset and inserts
// replacement in their place. Bytes before offset and after the removed
// range are preserved.
func (s *Store) Splice(offset, deleteCount int64, replacement string) error {
	return s.withFile("splice", func(f *os.File) error {
		info, err := f.Stat()
		if err != nil {
			return ioError("splice", err)
		}
		size := info.Size()
		if offset < 0 || deleteCount < 0 || offset+deleteCount > size {
			return &StoreError{
				Kind: KindIO,
				Op:   "splice",
				Err:  fmt.Errorf("%w: offset %d, delete %d, size %d", ErrSpliceRange, offset, deleteCount, size),
			}
		}

		if _, err := f.Seek(offset+deleteCount, io.SeekStart); err != nil {
			return ioError("splice", err)
		}
		rest, err := io.ReadAll(f)
		if err != nil {
			return ioError("splice", err)
		}

		content := append([]byte(replacement), rest...)
		if _, err := f.WriteAt(content, offset); err != nil {
			return ioError("splice", err)
		}
		if err := f.Truncate(offset + int64(len(content))); err != nil {
			return ioError("splice", err)
		}
		return nil
	})
}
