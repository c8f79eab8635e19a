// Package grading scores recorded agent sessions against the lab's process
// goals: the right DNS client, pointed at the lab server, asking about the
// scenario zone, within a reasonable number of commands.
//
// Transcripts are JSON traces as emitted by agent runners: either a bare
// array of messages or an object wrapping the same array under "messages".
// Only assistant messages with tool_use blocks naming a shell-like tool
// contribute commands.
package grading

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Command is one shell invocation lifted from a transcript.
type Command struct {
	Tool    string
	Command string
	Input   map[string]any
}

type transcriptBlock struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

type transcriptMessage struct {
	Type string `json:"type"`
	// Content is a block array for tool-using messages and a plain string
	// for text-only ones; decoded lazily so both shapes parse.
	Content json.RawMessage `json:"content"`
}

type transcriptEnvelope struct {
	Messages []transcriptMessage `json:"messages"`
}

// executorTools are the tool names treated as shell command executions.
var executorTools = map[string]bool{
	"bash":    true,
	"execute": true,
	"run":     true,
	"shell":   true,
}

// Transcript is a parsed session trace.
type Transcript struct {
	commands []Command
}

// ParseTranscript accepts either a bare message array or an object with a
// "messages" key. Empty input parses as an empty transcript.
func ParseTranscript(data []byte) (*Transcript, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Transcript{}, nil
	}

	var messages []transcriptMessage
	if err := json.Unmarshal(trimmed, &messages); err != nil {
		var envelope transcriptEnvelope
		if envErr := json.Unmarshal(trimmed, &envelope); envErr != nil {
			return nil, fmt.Errorf("transcript is neither a message array nor an object with a messages key: %w", err)
		}
		messages = envelope.Messages
	}

	t := &Transcript{}
	for _, msg := range messages {
		if msg.Type != "assistant" {
			continue
		}
		var blocks []transcriptBlock
		if err := json.Unmarshal(msg.Content, &blocks); err != nil {
			// Plain-text content carries no tool calls.
			continue
		}
		for _, block := range blocks {
			if block.Type != "tool_use" || !executorTools[strings.ToLower(block.Name)] {
				continue
			}
			command, _ := block.Input["command"].(string)
			t.commands = append(t.commands, Command{
				Tool:    block.Name,
				Command: command,
				Input:   block.Input,
			})
		}
	}
	return t, nil
}

// Commands returns the extracted shell commands in transcript order.
func (t *Transcript) Commands() []Command {
	out := make([]Command, len(t.commands))
	copy(out, t.commands)
	return out
}
