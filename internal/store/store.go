// Package store owns the on-disk transcript archive: the year/month
// directory layout, collision-safe atomic writes, and date-filtered
// listing and lookup.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mpalmer/claude-scribe/internal/transcript"
)

var (
	// ErrStorageUnavailable wraps directory or file creation failures.
	ErrStorageUnavailable = errors.New("store: storage unavailable")
	// ErrNotFound reports a filename absent from every year/month bucket.
	ErrNotFound = errors.New("store: transcript not found")
	// ErrAmbiguous reports a filename present in more than one bucket.
	ErrAmbiguous = errors.New("store: ambiguous filename")
)

// DefaultLimit bounds list results when the caller gives no limit.
const DefaultLimit = 20

// Store operates on a single archive root. It holds no cached state:
// directory contents and configuration may change between invocations.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

// monthDir resolves <root>/<YYYY>/<MM> for a timestamp, creating it and
// any missing ancestors. Creation is idempotent.
func (s *Store) monthDir(ts time.Time) (string, error) {
	dir := filepath.Join(s.root, fmt.Sprintf("%04d", ts.Year()), fmt.Sprintf("%02d", int(ts.Month())))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", ErrStorageUnavailable, dir, err)
	}
	return dir, nil
}

// Save encodes and writes a record, returning the final filename and
// absolute path. The write is atomic (temp file + rename in the target
// directory) and never overwrites: two saves within the same second get
// numerically disambiguated names.
func (s *Store) Save(rec transcript.Record) (filename, path string, err error) {
	dir, err := s.monthDir(rec.Date)
	if err != nil {
		return "", "", err
	}

	filename, path, err = freeName(dir, transcript.Name(rec.Date, rec.Title))
	if err != nil {
		return "", "", err
	}

	if err := writeAtomic(path, []byte(transcript.Encode(rec))); err != nil {
		return "", "", err
	}
	return filename, path, nil
}

// freeName appends -1, -2, ... before the extension until no existing
// file claims the name.
func freeName(dir, name string) (string, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 0; ; n++ {
		candidate := name
		if n > 0 {
			candidate = base + "-" + strconv.Itoa(n) + ext
		}
		path := filepath.Join(dir, candidate)
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return candidate, path, nil
		}
		if err != nil {
			return "", "", fmt.Errorf("%w: stat %s: %v", ErrStorageUnavailable, path, err)
		}
	}
}

// writeAtomic writes via a temp file in the same directory and renames
// into place, so a crash mid-write never leaves a truncated visible
// file. The temp file is removed on any failure path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".scribe-*")
	if err != nil {
		return fmt.Errorf("%w: temp file in %s: %v", ErrStorageUnavailable, dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrStorageUnavailable, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %v", ErrStorageUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename to %s: %v", ErrStorageUnavailable, path, err)
	}
	return nil
}

// SaveRaw archives a verbatim copy of a session log next to its
// rendered transcript, as <stamp>_raw.jsonl in the same month bucket.
// Like Save it writes atomically and never overwrites.
func (s *Store) SaveRaw(ts time.Time, data []byte) (filename, path string, err error) {
	dir, err := s.monthDir(ts)
	if err != nil {
		return "", "", err
	}

	filename, path, err = freeName(dir, ts.Format(transcript.StampLayout)+"_raw.jsonl")
	if err != nil {
		return "", "", err
	}

	if err := writeAtomic(path, data); err != nil {
		return "", "", err
	}
	return filename, path, nil
}

// Summary is a lightweight listing entry; bodies are not loaded.
type Summary struct {
	Filename string
	Path     string // relative to the archive root
	Date     time.Time
	Title    string
}

// List returns transcript summaries sorted descending by filename
// (equals descending chronological order), truncated to limit entries
// (DefaultLimit when limit <= 0). year filters to one year, year+month
// to one bucket; a month without a year is ignored.
func (s *Store) List(year, month, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	dirs, err := s.bucketDirs(year, month)
	if err != nil {
		return nil, err
	}

	var out []Summary
	for _, dir := range dirs {
		if len(out) >= limit {
			break
		}
		names, err := mdFilesDesc(filepath.Join(s.root, dir))
		if err != nil {
			continue // bucket vanished between scan and read
		}
		for _, name := range names {
			if len(out) >= limit {
				break
			}
			sum := Summary{
				Filename: name,
				Path:     filepath.Join(dir, name),
			}
			if ts, ok := transcript.ParseStamp(name); ok {
				sum.Date = ts
			}
			// Title comes from the metadata block head; a file with
			// undecodable metadata still lists, just untitled.
			if meta, err := s.readMeta(filepath.Join(s.root, dir, name)); err == nil {
				sum.Title = meta.Title
			}
			out = append(out, sum)
		}
	}
	return out, nil
}

// bucketDirs returns YYYY/MM directory paths relative to the root,
// newest bucket first, honoring the year/month filters.
func (s *Store) bucketDirs(year, month int) ([]string, error) {
	if year != 0 && month != 0 {
		return []string{filepath.Join(fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month))}, nil
	}

	years, err := numericDirsDesc(s.root, 4)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: scan %s: %v", ErrStorageUnavailable, s.root, err)
	}

	var dirs []string
	for _, y := range years {
		if year != 0 && y != fmt.Sprintf("%04d", year) {
			continue
		}
		months, err := numericDirsDesc(filepath.Join(s.root, y), 2)
		if err != nil {
			continue
		}
		for _, m := range months {
			dirs = append(dirs, filepath.Join(y, m))
		}
	}
	return dirs, nil
}

// Read resolves a transcript by bare filename (searching every bucket)
// or by YYYY/MM/name.md relative path, and returns the full file
// content. A bare filename matching in multiple buckets is ErrAmbiguous.
func (s *Store) Read(filename string) (string, error) {
	if strings.ContainsRune(filename, os.PathSeparator) || strings.ContainsRune(filename, '/') {
		rel := filepath.Clean(filename)
		if filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		data, err := os.ReadFile(filepath.Join(s.root, rel))
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, filename, err)
		}
		return string(data), nil
	}

	dirs, err := s.bucketDirs(0, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, dir := range dirs {
		p := filepath.Join(s.root, dir, filename)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
	case 1:
		data, err := os.ReadFile(matches[0])
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, matches[0], err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s found in %d buckets", ErrAmbiguous, filename, len(matches))
	}
}

// Count reports the number of archived transcripts across all buckets.
func (s *Store) Count() (int, error) {
	dirs, err := s.bucketDirs(0, 0)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, dir := range dirs {
		names, err := mdFilesDesc(filepath.Join(s.root, dir))
		if err != nil {
			continue
		}
		total += len(names)
	}
	return total, nil
}

// readMeta decodes only the front-matter head of a file.
func (s *Store) readMeta(path string) (transcript.Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return transcript.Meta{}, err
	}
	return transcript.DecodeMeta(data)
}

func numericDirsDesc(dir string, width int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() || len(e.Name()) != width {
			continue
		}
		if _, err := strconv.Atoi(e.Name()); err != nil {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func mdFilesDesc(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
