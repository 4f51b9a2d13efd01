package main

import (
	"bytes"
	"testing"

	"github.com/amonks/rtd/task"
)

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	tasks := []task.Task{
		{ID: 0, Name: "buy milk", CreatedAt: int64Ptr(10)},
		{ID: 1, Name: "walk dog", Completed: true, CompletedAt: int64Ptr(20)},
	}

	if err := encodeYAML(&buf, tasks); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `- id: 0
  name: buy milk
  completed: false
  deleted: false
  created_at: 10
- id: 1
  name: walk dog
  completed: true
  deleted: false
  completed_at: 20
`
	if got := buf.String(); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestEncodeJSON_EmptyList(t *testing.T) {
	var buf bytes.Buffer

	if err := encodeJSON(&buf, []task.Task{}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}
