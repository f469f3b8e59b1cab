package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// testModel returns a model with media loaded, a complete fragment marked,
// and a slow stand-in transcoder, so export runs only finish when cancelled.
func testModel(t *testing.T) *Model {
	t.Helper()

	dir := t.TempDir()
	src := filepath.Join(dir, "match.mp4")
	if err := os.WriteFile(src, []byte("not a real video"), 0644); err != nil {
		t.Fatal(err)
	}

	stub := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nsleep 5\n"), 0755); err != nil {
		t.Fatal(err)
	}

	m := NewModel(nil, "", false)
	m.exporter.Bin = stub
	m.sess.Load(src)
	m.sess.UpdateDuration(60)
	if err := m.sess.Selection().MarkStart(10); err != nil {
		t.Fatal(err)
	}
	if err := m.sess.Selection().MarkEnd(20); err != nil {
		t.Fatal(err)
	}
	return m
}

// runExportCmd executes the batch returned by startExport and returns the
// completion message the exporter produced.
func runExportCmd(t *testing.T, cmd tea.Cmd) exportDoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("startExport returned no command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("startExport did not return a batch command")
	}
	for _, c := range batch {
		if done, ok := c().(exportDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no export completion message in batch")
	return exportDoneMsg{}
}

func TestNewExportCancelsRunningOne(t *testing.T) {
	m := testModel(t)

	_, cmdA := m.startExport(false)
	genA := m.exp.gen

	// Starting a second export supersedes the first.
	_, _ = m.startExport(false)
	genB := m.exp.gen
	if genB == genA {
		t.Fatal("superseding export reused the previous run's id")
	}
	if !m.exp.running || m.exp.cancel == nil {
		t.Fatal("second export not running after supersede")
	}

	// The first run's transcoder was cancelled, so executing its command
	// now completes promptly with the cancellation.
	doneA := runExportCmd(t, cmdA)
	if !errors.Is(doneA.err, context.Canceled) {
		t.Fatalf("superseded run finished with %v, want context.Canceled", doneA.err)
	}

	// Its late completion message must not disturb the current run.
	m.Update(doneA)
	if !m.exp.running {
		t.Fatal("stale completion message stopped the current run")
	}
	if m.exp.cancel == nil {
		t.Fatal("stale completion message dropped the current run's cancel func")
	}
	if m.exp.gen != genB {
		t.Fatalf("current run id changed from %d to %d", genB, m.exp.gen)
	}

	// Nor may a stale success claim the result.
	m.Update(exportDoneMsg{gen: genA, path: "/wrong/clip.mp4"})
	if m.lastExport != "" {
		t.Fatalf("stale success set lastExport = %q", m.lastExport)
	}

	// The current run's own completion still lands normally.
	m.Update(exportDoneMsg{gen: genB, path: "/right/clip.mp4"})
	if m.exp.running {
		t.Fatal("current run still marked running after its completion")
	}
	if m.lastExport != "/right/clip.mp4" {
		t.Fatalf("lastExport = %q, want %q", m.lastExport, "/right/clip.mp4")
	}
}

func TestQuitDuringExportAsksConfirmation(t *testing.T) {
	m := testModel(t)

	_, _ = m.startExport(false)
	genA := m.exp.gen
	_, _ = m.startExport(false)

	// Deliver the superseded run's cancellation before quitting; the
	// current run is still live, so quitting must still ask.
	m.Update(exportDoneMsg{gen: genA, err: context.Canceled})

	_, _ = m.requestQuit()
	if m.quitting {
		t.Fatal("quit proceeded while an export was running")
	}
	if m.confirmQuit == nil {
		t.Fatal("no confirmation form shown while an export was running")
	}
}

func TestCancelExportStopsSubprocess(t *testing.T) {
	m := testModel(t)

	_, cmd := m.startExport(false)
	m.cancelExport()
	if m.exp.running || m.exp.cancel != nil {
		t.Fatal("export still marked running after cancelExport")
	}

	// The stub sleeps far longer than the test runs; only a delivered
	// cancellation lets its command return promptly.
	done := runExportCmd(t, cmd)
	if !errors.Is(done.err, context.Canceled) {
		t.Fatalf("cancelled export finished with %v, want context.Canceled", done.err)
	}
}
