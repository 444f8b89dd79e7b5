package consolefmt

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_LinesDoNotInterleave verifies that concurrent calls on
// one formatter each produce a whole line.
func TestConcurrency_LinesDoNotInterleave(t *testing.T) {
	var stdoutBuf, stderrBuf bytes.Buffer
	out := NewTerminalOutput(&stdoutBuf, &stderrBuf, true)
	f := NewFormatter(out, Options{LineBreakStart: Bool(false), LineBreakEnd: Bool(false)})

	const numGoroutines = 100
	const messagesPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				f.Info("goroutine", id, "info", j)
				f.Error("goroutine", id, "error", j)
			}
		}(i)
	}
	wg.Wait()

	check := func(name, output, style string) {
		lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
		if len(lines) != numGoroutines*messagesPerGoroutine {
			t.Fatalf("%s: expected %d lines, got %d", name, numGoroutines*messagesPerGoroutine, len(lines))
		}
		for _, line := range lines {
			if !strings.HasPrefix(line, style+"goroutine ") || !strings.HasSuffix(line, Reset) {
				t.Fatalf("%s: garbled line %q", name, line)
			}
		}
	}
	check("stdout", stdoutBuf.String(), ServerStyle(LevelInfo))
	check("stderr", stderrBuf.String(), ServerStyle(LevelError))

	for _, id := range []int{0, numGoroutines - 1} {
		want := fmt.Sprintf("goroutine %d info %d", id, messagesPerGoroutine-1)
		if !strings.Contains(stdoutBuf.String(), want) {
			t.Fatalf("missing %q", want)
		}
	}
}
