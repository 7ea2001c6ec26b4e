package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joseph-ayodele/posteingang/internal/core"
	"github.com/joseph-ayodele/posteingang/internal/export"
)

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := &core.Result{
		IntakeDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Groups: []export.Group{
			{Staff: "CV", Archive: []byte("zip"), Manifest: []byte("xlsx")},
			{Staff: "UNZUGEORDNET", Archive: []byte("zip"), Manifest: []byte("xlsx")},
		},
		Overview: []byte("overview"),
	}

	written, err := writeArtifacts(dir, res)
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{
		"2024-03-11_CV.zip",
		"2024-03-11_CV_Liste.xlsx",
		"2024-03-11_UNZUGEORDNET.zip",
		"2024-03-11_UNZUGEORDNET_Liste.xlsx",
		"2024-03-11_Uebersicht.xlsx",
	}
	if len(written) != len(want) {
		t.Fatalf("written = %v", written)
	}
	for i, name := range want {
		if filepath.Base(written[i]) != name {
			t.Fatalf("written[%d] = %s, want %s", i, written[i], name)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "2024-03-11_Registerluecken.xlsx")); !os.IsNotExist(err) {
		t.Fatal("gap report written although there are no gaps")
	}
}

func TestWriteArtifactsStaysInsideDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out")
	res := &core.Result{
		IntakeDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Groups:     []export.Group{{Staff: "../../escape", Archive: []byte("zip"), Manifest: []byte("xlsx")}},
		Overview:   []byte("overview"),
	}

	written, err := writeArtifacts(dir, res)
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	for _, p := range written {
		if filepath.Dir(p) != dir {
			t.Fatalf("%s written outside %s", p, dir)
		}
	}
	if filepath.Base(written[0]) != "2024-03-11_escape.zip" {
		t.Fatalf("archive name = %s", written[0])
	}
}
