package main

import (
	"bytes"
	"testing"
)

func TestRootCmdHasAllSubcommands(t *testing.T) {
	root := NewRootCmd()
	want := []string{"parse", "format", "pack", "unpack", "scan", "info"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestInfoCmdRuns(t *testing.T) {
	cmd := NewInfoCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if out.Len() == 0 {
		t.Error("info command produced no output")
	}
}

func TestLoadConfigFileMissingIsNotError(t *testing.T) {
	dir := t.TempDir()
	c, err := loadConfigFile(dir)
	if err != nil {
		t.Fatalf("loadConfigFile() on missing file failed: %v", err)
	}
	if c.MaxDepth != 0 || c.Codec != "" {
		t.Errorf("expected zero-value config, got %+v", c)
	}
}

func TestLoadConfigFileParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, ".zsonctl.yaml", "maxDepth: 10\ncodec: fast\n")
	c, err := loadConfigFile(dir)
	if err != nil {
		t.Fatalf("loadConfigFile() failed: %v", err)
	}
	if c.MaxDepth != 10 || c.Codec != "fast" {
		t.Errorf("got %+v, want MaxDepth=10 Codec=fast", c)
	}
}
