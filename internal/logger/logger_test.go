package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cube.txt")
	l := New(path)
	l.now = fixedClock
	l.Log("hello")
	l.Logf("clicked %s", "left")

	lines := l.Lines()
	want := []string{"[2026-01-02 03:04:05] hello", "[2026-01-02 03:04:05] clicked left"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Fatalf("lines = %q", lines)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Split(strings.TrimSpace(string(data)), "\n"); len(got) != 2 || got[1] != want[1] {
		t.Errorf("file = %q", data)
	}
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Lines should return a copy")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("len = %d, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[len(lines)-1], "line 509") {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
	if !strings.HasSuffix(lines[0], "line 10") {
		t.Errorf("first line = %q", lines[0])
	}
}
