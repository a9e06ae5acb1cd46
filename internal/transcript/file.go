package transcript

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultInputFile is read when no input path is configured.
	DefaultInputFile = "bobby_game.txt"
	// DefaultOutputFile is written when no output path is configured.
	DefaultOutputFile = "bobby_game_tidy.txt"
)

// Result describes a completed tidy run.
type Result struct {
	Input        string   `json:"input"`
	Output       string   `json:"output"`
	Segments     int      `json:"segments"`
	Policy       Policy   `json:"policy"`
	Turns        []string `json:"turns"`
	BytesRead    int      `json:"bytesRead"`
	BytesWritten int      `json:"bytesWritten"`
}

// ReadFile normalizes the transcript at path without writing anything.
func (n *Normalizer) ReadFile(path string) ([]string, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read transcript: %w", err)
	}

	turns, err := n.Normalize(raw)
	if err != nil {
		return nil, len(raw), fmt.Errorf("failed to normalize %s: %w", path, err)
	}
	return turns, len(raw), nil
}

// TidyFile reads the transcript at in and writes one turn per line to out.
// The output file is left untouched if the input cannot be normalized.
func (n *Normalizer) TidyFile(in, out string) (*Result, error) {
	raw, err := os.ReadFile(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	turns, segments, err := n.normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", in, err)
	}

	written, err := WriteTurns(out, turns)
	if err != nil {
		return nil, err
	}

	n.logger.WithFields(logrus.Fields{
		"input":  in,
		"output": out,
		"turns":  len(turns),
		"bytes":  written,
	}).Info("Wrote tidy transcript")

	return &Result{
		Input:        in,
		Output:       out,
		Segments:     segments,
		Policy:       n.Policy(),
		Turns:        turns,
		BytesRead:    len(raw),
		BytesWritten: written,
	}, nil
}

// WriteTurns creates or truncates path and writes each turn followed by a newline.
func WriteTurns(path string, turns []string) (written int, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, turn := range turns {
		nn, err := w.WriteString(turn + "\n")
		written += nn
		if err != nil {
			return written, fmt.Errorf("failed to write turn: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush output file: %w", err)
	}
	return written, nil
}
