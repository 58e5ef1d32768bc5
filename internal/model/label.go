// Package model defines the data produced by a beautify run.
package model

import "github.com/ArmisSecurity/beautify-cli/internal/beautify"

// Label is one identifier and the display label produced for it.
type Label struct {
	Input string        `json:"input"`
	Label string        `json:"label"`
	Mode  beautify.Mode `json:"mode,omitempty"`
	Line  int           `json:"line,omitempty"`
	Error string        `json:"error,omitempty"`
}

// Failed reports whether the identifier could not be beautified.
func (l Label) Failed() bool {
	return l.Error != ""
}

// Result is the output of a single run over one source.
type Result struct {
	Source  string  `json:"source"`
	Compat  bool    `json:"compat"`
	Labels  []Label `json:"labels"`
	Summary Summary `json:"summary"`
}

// Summary counts labels by outcome and mode.
type Summary struct {
	Total  int                   `json:"total"`
	Failed int                   `json:"failed"`
	ByMode map[beautify.Mode]int `json:"by_mode"`
}

// NewResult builds a Result and its summary from labels.
func NewResult(source string, compat bool, labels []Label) *Result {
	if labels == nil {
		labels = []Label{}
	}
	return &Result{
		Source:  source,
		Compat:  compat,
		Labels:  labels,
		Summary: Summarize(labels),
	}
}

// Summarize counts labels. Failed labels are not counted by mode.
func Summarize(labels []Label) Summary {
	s := Summary{
		Total:  len(labels),
		ByMode: make(map[beautify.Mode]int),
	}
	for _, l := range labels {
		if l.Failed() {
			s.Failed++
			continue
		}
		s.ByMode[l.Mode]++
	}
	return s
}
