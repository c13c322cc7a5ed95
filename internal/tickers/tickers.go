package tickers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FromList parses a comma-separated ticker list, trimming whitespace and
// dropping empty entries.
func FromList(list string) []string {
	var out []string
	for _, t := range strings.Split(list, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FromFile reads tickers from a file, one per line. Blank lines are skipped.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker file: %w", err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t := strings.TrimSpace(scanner.Text())
		if t != "" {
			out = append(out, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ticker file: %w", err)
	}
	return out, nil
}

// Sample returns a copy of the built-in NSE large-cap sample list.
func Sample() []string {
	out := make([]string, len(sampleTickers))
	copy(out, sampleTickers)
	return out
}
