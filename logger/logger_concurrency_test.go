package logger

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_FileLinesIntact verifies that the mutex prevents garbled
// output when many goroutines share one file-backed Logger.
func TestConcurrency_FileLinesIntact(t *testing.T) {
	defer discardOutput()()
	t.Setenv(levelsEnv, "")

	l, logPath := newFileLogger(t, Config{})

	const numGoroutines = 50
	const messagesPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				switch j % 4 {
				case 0:
					l.Debug("goroutine", id, "msg", j)
				case 1:
					l.Info("goroutine", id, "msg", j)
				case 2:
					l.Warn("goroutine", id, "msg", j)
				default:
					l.Error("goroutine", id, "msg", j)
				}
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(readLog(t, logPath), "\n"), "\n")
	if want := numGoroutines * messagesPerGoroutine; len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}

	linePattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}\] \[\d{2}:\d{2}:\d{2}\] \[(?:DEBUG\]|INFO\] |WARN\] |ERROR\]) goroutine \d+ msg \d+$`)
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !linePattern.MatchString(line) {
			t.Fatalf("garbled line: %q", line)
		}
		idx := strings.Index(line, "goroutine")
		seen[line[idx:]] = true
	}

	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < messagesPerGoroutine; j++ {
			key := fmt.Sprintf("goroutine %d msg %d", i, j)
			if !seen[key] {
				t.Fatalf("missing record %q", key)
			}
		}
	}
}
