package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

const recordingExt = ".jsonl"

// ErrAmbiguousRecording is returned when a short name prefixes several recordings
var ErrAmbiguousRecording = errors.New("recording name is ambiguous")

// Catalog finds recordings in the recordings directory by their short names
type Catalog struct {
	dir   string
	store ports.RecordingStore
}

// NewCatalog creates a Catalog over dir
func NewCatalog(store ports.RecordingStore, dir string) *Catalog {
	return &Catalog{dir: dir, store: store}
}

// Dir returns the recordings directory
func (c *Catalog) Dir() string {
	return c.dir
}

// FileName builds the conventional file name v{tool_version}_{model}_{task-slug}.jsonl
func FileName(meta RecordingMeta) string {
	version := strings.TrimPrefix(strings.TrimSpace(meta.ToolVersion), "v")
	if version == "" {
		version = "0.0.0"
	}
	model := domain.Slugify(meta.Model)
	if model == "" {
		model = "unknown"
	}
	task := domain.Slugify(meta.Task)
	if task == "" {
		task = "untitled"
	}
	return fmt.Sprintf("v%s_%s_%s%s", version, model, task, recordingExt)
}

// PathFor returns where a recording with this metadata lives
func (c *Catalog) PathFor(meta RecordingMeta) string {
	return filepath.Join(c.dir, FileName(meta))
}

// Resolve turns a short name, a file name or a path into a recording path.
// Short names may be any unique prefix of a recording name.
func (c *Catalog) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", domain.ErrRecordingNotFound)
	}

	if strings.ContainsRune(name, filepath.Separator) {
		if _, err := c.store.ReadHeader(name); err != nil {
			return "", err
		}
		return name, nil
	}

	files, err := c.store.List(c.dir)
	if err != nil {
		return "", err
	}

	short := strings.TrimSuffix(name, recordingExt)
	var matches []ports.RecordingFile
	for _, f := range files {
		if f.Name == short {
			return f.Path, nil
		}
		if strings.HasPrefix(f.Name, short) {
			matches = append(matches, f)
		}
	}

	switch len(matches) {
	case 0:
		// A bare file name in the working directory
		if _, err := c.store.ReadHeader(name); err == nil {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s in %s", domain.ErrRecordingNotFound, name, c.dir)
	case 1:
		return matches[0].Path, nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return "", fmt.Errorf("%w: %s matches %s", ErrAmbiguousRecording, name, strings.Join(names, ", "))
	}
}

// List describes every recording in the directory, sorted by name.
// Recordings whose header cannot be read are listed with an empty header.
func (c *Catalog) List() ([]domain.RecordingInfo, error) {
	files, err := c.store.List(c.dir)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.RecordingInfo, 0, len(files))
	for _, f := range files {
		info := domain.RecordingInfo{Name: f.Name, Path: f.Path, Size: f.Size}

		header, err := c.store.ReadHeader(f.Path)
		if err == nil {
			_, err = migrateHeader(header)
		}
		if err == nil {
			err = remarshal(header, &info.Header)
		}
		if err != nil {
			logging.Logger.Warn("Unreadable recording header", "path", f.Path, "error", err)
		}

		infos = append(infos, info)
	}
	return infos, nil
}
