package entities

import "strings"

// Transcript is the plain text produced by the speech backend
type Transcript struct {
	Text string `json:"text"`
}

// WordCount returns the number of whitespace-separated tokens
func (t Transcript) WordCount() int {
	return len(strings.Fields(t.Text))
}
