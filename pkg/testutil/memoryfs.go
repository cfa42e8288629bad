package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/arthur-debert/vendorlink/pkg/types"
)

const maxLinkHops = 40

// MemoryFS implements types.FS with in-memory storage. Paths are absolute;
// relative symlink contents resolve against the link's directory.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode

	// Error injection, keyed by "op path"
	errs map[string]error
}

type memNode struct {
	mode    fs.FileMode
	link    string
	modTime time.Time
}

var _ types.FS = (*MemoryFS)(nil)

// NewMemoryFS creates a filesystem holding only the root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			string(filepath.Separator): {mode: fs.ModeDir | 0755, modTime: time.Now()},
		},
		errs: make(map[string]error),
	}
}

// FailOn makes op ("stat", "lstat", "mkdir", "symlink", "readlink",
// "remove", "eval") on path return err
func (m *MemoryFS) FailOn(op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[op+" "+filepath.Clean(path)] = err
}

// AddDir creates a directory and its parents
func (m *MemoryFS) AddDir(path string) *MemoryFS {
	if err := m.MkdirAll(path, 0755); err != nil {
		panic(err)
	}
	return m
}

// AddFile creates a regular file, creating parents as needed
func (m *MemoryFS) AddFile(path string) *MemoryFS {
	return m.AddEntry(path, 0644)
}

// AddEntry creates an entry with an arbitrary mode, e.g. fs.ModeNamedPipe
func (m *MemoryFS) AddEntry(path string, mode fs.FileMode) *MemoryFS {
	m.AddDir(filepath.Dir(path))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[filepath.Clean(path)] = &memNode{mode: mode, modTime: time.Now()}
	return m
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.injected("stat", name); err != nil {
		return nil, err
	}
	resolved, err := m.eval(name, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: unwrapPathError(err)}
	}
	return memInfo{name: filepath.Base(resolved), node: m.nodes[resolved]}, nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.injected("lstat", name); err != nil {
		return nil, err
	}
	path, node, err := m.lookup("lstat", name)
	if err != nil {
		return nil, err
	}
	return memInfo{name: filepath.Base(path), node: node}, nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("mkdir", path); err != nil {
		return err
	}

	cur := string(filepath.Separator)
	for _, part := range splitPath(path) {
		next := filepath.Join(cur, part)
		n, ok := m.nodes[next]
		if !ok {
			m.nodes[next] = &memNode{mode: fs.ModeDir | perm, modTime: time.Now()}
			cur = next
			continue
		}
		if n.mode&fs.ModeSymlink != 0 {
			resolved, err := m.eval(next, 0)
			if err != nil {
				return &fs.PathError{Op: "mkdir", Path: next, Err: unwrapPathError(err)}
			}
			next, n = resolved, m.nodes[resolved]
		}
		if !n.mode.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: next, Err: syscall.ENOTDIR}
		}
		cur = next
	}
	return nil
}

func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("symlink", newname); err != nil {
		return err
	}
	path, err := m.entryPath("symlink", newname)
	if err != nil {
		return err
	}
	if _, exists := m.nodes[path]; exists {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	m.nodes[path] = &memNode{mode: fs.ModeSymlink | 0777, link: oldname, modTime: time.Now()}
	return nil
}

func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.injected("readlink", name); err != nil {
		return "", err
	}
	_, node, err := m.lookup("readlink", name)
	if err != nil {
		return "", err
	}
	if node.mode&fs.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: syscall.EINVAL}
	}
	return node.link, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected("remove", name); err != nil {
		return err
	}
	path, node, err := m.lookup("remove", name)
	if err != nil {
		return err
	}
	if node.mode.IsDir() {
		prefix := path + string(filepath.Separator)
		for p := range m.nodes {
			if strings.HasPrefix(p, prefix) {
				return &fs.PathError{Op: "remove", Path: name, Err: syscall.ENOTEMPTY}
			}
		}
	}
	delete(m.nodes, path)
	return nil
}

func (m *MemoryFS) EvalSymlinks(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.injected("eval", path); err != nil {
		return "", err
	}
	return m.eval(path, 0)
}

func (m *MemoryFS) injected(op, path string) error {
	return m.errs[op+" "+filepath.Clean(path)]
}

// entryPath resolves the parent of name and returns the physical path of
// the entry itself, without following it
func (m *MemoryFS) entryPath(op, name string) (string, error) {
	clean := filepath.Clean(name)
	parent, err := m.eval(filepath.Dir(clean), 0)
	if err != nil {
		return "", &fs.PathError{Op: op, Path: name, Err: unwrapPathError(err)}
	}
	if !m.nodes[parent].mode.IsDir() {
		return "", &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
	}
	return filepath.Join(parent, filepath.Base(clean)), nil
}

func (m *MemoryFS) lookup(op, name string) (string, *memNode, error) {
	path, err := m.entryPath(op, name)
	if err != nil {
		return "", nil, err
	}
	node, ok := m.nodes[path]
	if !ok {
		return "", nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return path, node, nil
}

// eval resolves every symlink in p and returns the physical path
func (m *MemoryFS) eval(p string, hops int) (string, error) {
	if hops > maxLinkHops {
		return "", &fs.PathError{Op: "eval", Path: p, Err: syscall.ELOOP}
	}
	cur := string(filepath.Separator)
	parts := splitPath(p)
	for idx, part := range parts {
		next := filepath.Join(cur, part)
		n, ok := m.nodes[next]
		if !ok {
			return "", &fs.PathError{Op: "eval", Path: p, Err: fs.ErrNotExist}
		}
		if n.mode&fs.ModeSymlink != 0 {
			dest := n.link
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(cur, dest)
			}
			resolved, err := m.eval(dest, hops+1)
			if err != nil {
				return "", err
			}
			next, n = resolved, m.nodes[resolved]
		}
		if idx < len(parts)-1 && !n.mode.IsDir() {
			return "", &fs.PathError{Op: "eval", Path: p, Err: syscall.ENOTDIR}
		}
		cur = next
	}
	return cur, nil
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(filepath.Clean(p), string(filepath.Separator)) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func unwrapPathError(err error) error {
	if pe, ok := err.(*fs.PathError); ok {
		return pe.Err
	}
	return err
}

type memInfo struct {
	name string
	node *memNode
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return 0 }
func (i memInfo) Mode() fs.FileMode  { return i.node.mode }
func (i memInfo) ModTime() time.Time { return i.node.modTime }
func (i memInfo) IsDir() bool        { return i.node.mode.IsDir() }
func (i memInfo) Sys() interface{}   { return nil }
