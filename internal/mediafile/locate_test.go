package mediafile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestIsVideo(t *testing.T) {
	for _, name := range []string{"a.mkv", "a.MP4", "a.avi", "a.webm", "a.m2ts"} {
		if !IsVideo(name) {
			t.Errorf("IsVideo(%q) = false", name)
		}
	}
	for _, name := range []string{"a.srt", "a.txt", "a", "a.nfo"} {
		if IsVideo(name) {
			t.Errorf("IsVideo(%q) = true", name)
		}
	}
}

func TestFindFilesNonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.S01E02.mkv"))
	touch(t, filepath.Join(dir, "a.S01E01.mkv"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "a.S01E01.eng.srt"))
	touch(t, filepath.Join(dir, "nested", "c.S01E03.mkv"))
	if err := os.Mkdir(filepath.Join(dir, "dir.srt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	videos, err := FindVideoFiles(dir, false)
	if err != nil {
		t.Fatalf("FindVideoFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "a.S01E01.mkv"), filepath.Join(dir, "b.S01E02.mkv")}
	if !reflect.DeepEqual(videos, want) {
		t.Fatalf("videos = %v, want %v", videos, want)
	}

	subs, err := FindSubtitleFiles(dir, false)
	if err != nil {
		t.Fatalf("FindSubtitleFiles: %v", err)
	}
	if !reflect.DeepEqual(subs, []string{filepath.Join(dir, "a.S01E01.eng.srt")}) {
		t.Fatalf("subs = %v", subs)
	}
}

func TestFindFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.mkv"))
	touch(t, filepath.Join(dir, "nested", "a.mkv"))
	touch(t, filepath.Join(dir, "nested", "deeper", "b.ass"))

	videos, err := FindVideoFiles(dir, true)
	if err != nil {
		t.Fatalf("FindVideoFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "nested", "a.mkv"), filepath.Join(dir, "z.mkv")}
	if !reflect.DeepEqual(videos, want) {
		t.Fatalf("videos = %v, want %v", videos, want)
	}
	subs, err := FindSubtitleFiles(dir, true)
	if err != nil {
		t.Fatalf("FindSubtitleFiles: %v", err)
	}
	if len(subs) != 1 || filepath.Base(subs[0]) != "b.ass" {
		t.Fatalf("subs = %v", subs)
	}
}

func TestLocatorExclude(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Show.S01E01.mkv"))
	touch(t, filepath.Join(dir, "Show.S01E01.sample.mkv"))

	videos, err := Locator{Exclude: []string{"*.sample.*"}}.Videos(dir)
	if err != nil {
		t.Fatalf("Videos: %v", err)
	}
	if len(videos) != 1 || filepath.Base(videos[0]) != "Show.S01E01.mkv" {
		t.Fatalf("videos = %v", videos)
	}

	if _, err := (Locator{Exclude: []string{"["}}).Videos(dir); err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}

func TestFindFilesMissingDirectory(t *testing.T) {
	if _, err := FindVideoFiles(filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := FindSubtitleFiles(filepath.Join(t.TempDir(), "missing"), true); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
