package terminal

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-errors/errors"
)

func openShell(t *testing.T, opts Options) *Session {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	if opts.Shell == "" {
		opts.Shell = "/bin/sh"
	}
	s, err := Open(opts)
	if errors.Is(err, ErrPTYAllocation) {
		t.Skipf("pty not available: %v", err)
	}
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		ch <- result{data, err}
	}()
	select {
	case res := <-ch:
		if res.err != nil {
			t.Fatalf("ReadAll() error = %v, want nil (EOF)", res.err)
		}
		return string(res.data)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shell output")
		return ""
	}
}

func TestOpen_RunsShellAndReportsExit(t *testing.T) {
	s := openShell(t, Options{Args: []string{"-c", "printf hello; exit 3"}})

	out := readAll(t, s)
	if !strings.Contains(out, "hello") {
		t.Errorf("output = %q, want it to contain %q", out, "hello")
	}

	err := s.Wait()
	if err == nil || !strings.Contains(err.Error(), "exit status 3") {
		t.Errorf("Wait() = %v, want exit status 3", err)
	}
	if again := s.Wait(); again != err {
		t.Errorf("second Wait() = %v, want cached %v", again, err)
	}
}

func TestOpen_Environment(t *testing.T) {
	s := openShell(t, Options{
		Args: []string{"-c", `printf '%s %s %s %s' "$TERM" "$LINES" "$COLUMNS" "$SHELLPANE_TEST"`},
		Rows: 30,
		Cols: 100,
		Env:  map[string]string{"SHELLPANE_TEST": "yes"},
	})

	out := readAll(t, s)
	if !strings.Contains(out, "linux 30 100 yes") {
		t.Errorf("output = %q, want %q", out, "linux 30 100 yes")
	}

	env := s.Env()
	if env["TERM"] != "linux" || env["SHELLPANE_TEST"] != "yes" {
		t.Errorf("Env() = %v", env)
	}
	env["TERM"] = "changed"
	if s.Env()["TERM"] != "linux" {
		t.Error("Env() should return a copy")
	}
}

func TestSession_SizeAndPid(t *testing.T) {
	s := openShell(t, Options{Args: []string{"-c", "sleep 5"}, Rows: 12, Cols: 34})

	if rows, cols := s.Size(); rows != 12 || cols != 34 {
		t.Errorf("Size() = %d, %d, want 12, 34", rows, cols)
	}
	if s.Pid() <= 0 {
		t.Errorf("Pid() = %d, want positive", s.Pid())
	}
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	s := openShell(t, Options{Args: []string{"-c", "sleep 30"}})

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close() did not return")
	}

	if _, err := s.Write([]byte("echo hi\n")); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Write after Close = %v, want ErrSessionClosed", err)
	}
	buf := make([]byte, 16)
	if n, err := s.Read(buf); n != 0 || err != io.EOF {
		t.Errorf("Read after Close = %d, %v, want 0, EOF", n, err)
	}
}

func TestSession_WriteReachesShell(t *testing.T) {
	s := openShell(t, Options{Args: []string{"-c", "read line; printf 'got:%s' \"$line\""}})

	if _, err := s.Write([]byte("ping\r")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out := readAll(t, s); !strings.Contains(out, "got:ping") {
		t.Errorf("output = %q, want it to contain %q", out, "got:ping")
	}
}

func TestOpen_ShellNotFound(t *testing.T) {
	_, err := Open(Options{Shell: "/definitely/not/a/shell"})
	if !errors.Is(err, ErrShellNotFound) {
		t.Fatalf("Open() error = %v, want ErrShellNotFound", err)
	}
	if !strings.Contains(err.Error(), "/definitely/not/a/shell") {
		t.Errorf("error %q should name the shell", err)
	}
}

func TestDefaultEnv(t *testing.T) {
	env := DefaultEnv(40, 120)
	want := map[string]string{
		"TERM":    "linux",
		"LANG":    "en_US.UTF-8",
		"LINES":   "40",
		"COLUMNS": "120",
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("DefaultEnv()[%q] = %q, want %q", k, env[k], v)
		}
	}
}

func TestMergeEnv(t *testing.T) {
	base := []string{"HOME=/root", "TERM=xterm-256color", "PATH=/bin"}
	got := mergeEnv(base, map[string]string{"TERM": "linux", "LANG": "C"})

	want := []string{"HOME=/root", "PATH=/bin", "LANG=C", "TERM=linux"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("mergeEnv() = %v, want %v", got, want)
	}
}
