package nginx

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"
)

// memFS is an in-memory FileSystem for tests. Directories are inferred from
// file paths; entries in denied simulate permission failures.
type memFS struct {
	files  map[string]string
	dirs   map[string]bool
	denied map[string]bool
}

func newMemFS(files map[string]string) *memFS {
	m := &memFS{
		files:  files,
		dirs:   map[string]bool{},
		denied: map[string]bool{},
	}
	for p := range files {
		for d := filepath.Dir(p); d != "/" && d != "."; d = filepath.Dir(d) {
			m.dirs[d] = true
		}
	}
	return m
}

func (m *memFS) deny(path string) *memFS {
	m.denied[path] = true
	return m
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	if m.denied[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	if s, ok := m.files[path]; ok {
		return []byte(s), nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func (m *memFS) Glob(pattern string) ([]string, error) {
	var out []string
	for p := range m.files {
		ok, err := filepath.Match(pattern, p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	for d := range m.dirs {
		if ok, _ := filepath.Match(pattern, d); ok {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memFS) Stat(path string) (fs.FileInfo, error) {
	if m.denied[path] {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrPermission}
	}
	if _, ok := m.files[path]; ok {
		return memInfo{name: filepath.Base(path)}, nil
	}
	if m.dirs[path] {
		return memInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

type memInfo struct {
	name string
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return 0 }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir
	}
	return 0
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }
