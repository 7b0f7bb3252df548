package prof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		CPU: filepath.Join(dir, "cpu.out"),
		Mem: filepath.Join(dir, "mem.out"),
	}
	be.True(t, opts.Enabled())
	s, err := Start(opts)
	be.Err(t, err, nil)
	be.Err(t, s.Stop(), nil)
	for _, p := range []string{opts.CPU, opts.Mem} {
		info, err := os.Stat(p)
		be.Err(t, err, nil)
		be.True(t, info.Size() > 0)
	}
}

func TestStopNil(t *testing.T) {
	var s *Session
	be.Err(t, s.Stop(), nil)
	be.True(t, !Options{}.Enabled())
}
