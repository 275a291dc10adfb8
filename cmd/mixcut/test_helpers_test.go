package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	workDir    string
	outputDir  string
	ffmpegPath string
}

// setupCLITestEnv writes a config file backed by temp directories and a stub
// ffmpeg that creates whatever output path it is asked for.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		workDir:    filepath.Join(base, "work"),
		outputDir:  filepath.Join(base, "output"),
		ffmpegPath: filepath.Join(base, "bin", "ffmpeg"),
	}

	if err := os.MkdirAll(filepath.Dir(env.ffmpegPath), 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	stub := "#!/bin/sh\nfor last in \"$@\"; do :; done\ntouch \"$last\"\n"
	if err := os.WriteFile(env.ffmpegPath, []byte(stub), 0o755); err != nil {
		t.Fatalf("write ffmpeg stub: %v", err)
	}

	cfg := fmt.Sprintf(`[paths]
work_dir = %q
output_dir = %q
log_dir = %q

[split]
ffmpeg = %q

[logging]
format = "json"
level = "warn"
`, env.workDir, env.outputDir, filepath.Join(base, "logs"), env.ffmpegPath)
	if err := os.WriteFile(env.configPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

// runCLI executes the root command with the given args plus --config and
// returns stdout and stderr.
func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	full := args
	if configPath != "" {
		full = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(full)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
