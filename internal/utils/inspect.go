package utils

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"unicode/utf8"
)

// Report holds diagnostics about a SQL artifact
type Report struct {
	Path       string
	Bytes      int
	Chars      int
	Lines      int
	Statements int
	Head       string
	Tail       string
}

// Inspect reads the artifact at path and summarizes it. Head and Tail hold at
// most previewChars characters each.
func Inspect(path string, previewChars int) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	report := InspectBytes(data, previewChars)
	report.Path = path
	return report, nil
}

// InspectBytes summarizes artifact content already in memory
func InspectBytes(data []byte, previewChars int) *Report {
	runes := []rune(string(data))
	head, tail := max(previewChars, 0), max(previewChars, 0)
	if head > len(runes) {
		head = len(runes)
	}
	if tail > len(runes) {
		tail = len(runes)
	}

	return &Report{
		Bytes:      len(data),
		Chars:      utf8.RuneCount(data),
		Lines:      bytes.Count(data, []byte("\n")) + 1,
		Statements: countStatements(data),
		Head:       string(runes[:head]),
		Tail:       string(runes[len(runes)-tail:]),
	}
}

func countStatements(data []byte) int {
	var n int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(scanner.Text())), "INSERT INTO ") {
			n++
		}
	}
	return n
}
