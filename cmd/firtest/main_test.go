package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fir/internal/testutil"
	"github.com/cwbudde/algo-fir/measure/golden"
)

func writeFixture(t *testing.T, perturb int) string {
	t.Helper()
	fx, err := golden.Generate(testutil.DeterministicNoise(9, 1<<15-1, 1500), 44100)
	if err != nil {
		t.Fatal(err)
	}
	if perturb >= 0 {
		fx.Golden[perturb] -= 10
	}
	dir := t.TempDir()
	if err := fx.Save(dir); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRunPass(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dir", writeFixture(t, -1)}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s\nstdout:\n%s", code, stderr.String(), stdout.String())
	}
	if !strings.Contains(stdout.String(), "PASS") {
		t.Fatalf("stdout:\n%s", stdout.String())
	}
}

func TestRunMismatch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dir", writeFixture(t, 321)}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "FAIL at index 321") {
		t.Fatalf("stdout:\n%s", stdout.String())
	}
}

func TestRunMissingFiles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dir", t.TempDir()}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "cannot open data files") {
		t.Fatalf("stderr:\n%s", stderr.String())
	}
}

func TestRunTapMismatch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dir", writeFixture(t, -1), "-taps", "50"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "coefficient count") {
		t.Fatalf("stderr:\n%s", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
