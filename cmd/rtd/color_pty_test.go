package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/amonks/rtd/internal/testsupport"
	"github.com/creack/pty"
)

// runInTerminal runs the rtd binary attached to a pseudo-terminal and
// returns everything it printed.
func runInTerminal(t *testing.T, bin, home string, args ...string) string {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Env = append(terminalEnv(), "HOME="+home, "TERM=xterm-256color")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		t.Fatalf("start in pty: %v", err)
	}
	defer ptmx.Close()

	var out bytes.Buffer
	// Reading fails with EIO once the child closes its side.
	_, _ = io.Copy(&out, ptmx)
	if err := cmd.Wait(); err != nil {
		t.Fatalf("rtd %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func terminalEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		switch {
		case strings.HasPrefix(kv, "NO_COLOR="),
			strings.HasPrefix(kv, "TERM="),
			strings.HasPrefix(kv, "HOME="),
			strings.HasPrefix(kv, "RTD_"):
			continue
		}
		env = append(env, kv)
	}
	return env
}

func TestColorOutputOnTerminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty is not supported on windows")
	}

	bin := testsupport.BuildRtd(t)
	home := testsupport.SetupTestHome(t)
	file := filepath.Join(home, "tasks.csv")

	runInTerminal(t, bin, home, "--file", file, "add", "--name", "buy milk")

	auto := runInTerminal(t, bin, home, "--file", file, "list")
	if !strings.Contains(auto, "\x1b[") {
		t.Fatalf("expected ANSI escapes on a terminal, got %q", auto)
	}
	if !strings.Contains(stripANSICodes(auto), "buy milk") {
		t.Fatalf("expected task name in output, got %q", auto)
	}

	never := runInTerminal(t, bin, home, "--file", file, "--color", "never", "list")
	if strings.Contains(never, "\x1b[") {
		t.Fatalf("expected plain output with --color never, got %q", never)
	}
}
