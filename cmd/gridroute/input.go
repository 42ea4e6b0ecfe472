package main

import (
	"path/filepath"
	"time"
)

// Input holds the command line flags.
type Input struct {
	scenarioPath string
	algorithm    string
	verbose      bool
	timeout      time.Duration
	precheck     bool
	showMetrics  bool
}

// resolve returns path relative to the scenario file's directory.
func (i *Input) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(filepath.Dir(i.scenarioPath), path)
}
