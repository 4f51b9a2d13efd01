package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/rtd/task"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	rtdPath   string
	buildErr  error
)

// BuildRtd builds the rtd binary once and returns its path.
func BuildRtd(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "rtd-bin-")
		if err != nil {
			buildErr = err
			return
		}

		rtdPath = filepath.Join(binDir, "rtd")
		cmd := exec.Command("go", "build", "-o", rtdPath, "./cmd/rtd")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build rtd: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return rtdPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("RTD", BuildRtd(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTaskID finds a task by name in a JSON listing and stores its ID in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE NAME VAR")
	}

	var items []task.Task
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	name := args[1]
	for _, item := range items {
		if item.Name == name {
			ts.Setenv(args[2], strconv.FormatUint(uint64(item.ID), 10))
			return
		}
	}

	ts.Fatalf("task with name %q not found", name)
}

// CmdRecordCount asserts the number of decodable records in a task file.
func CmdRecordCount(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: records FILE COUNT")
	}
	want, err := strconv.Atoi(args[1])
	if err != nil {
		ts.Fatalf("parse count: %v", err)
	}

	store, err := task.OpenOrCreate(ts.MkAbs(args[0]), task.OpenOptions{})
	ts.Check(err)
	records, err := store.Records()
	ts.Check(err)

	if got := len(records); (got == want) == neg {
		if neg {
			ts.Fatalf("expected record count other than %d", want)
		}
		ts.Fatalf("expected %d records, got %d", want, got)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
