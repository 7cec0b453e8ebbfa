// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestStdinReader_ReadsAndTrims(t *testing.T) {
	in := strings.NewReader("  first answer  \nsecond\n")
	var out bytes.Buffer
	r := NewStdinReader(in, &out)

	line, err := r.ReadLine("> ")
	if err != nil {
		t.Fatal(err)
	}
	if line != "first answer" {
		t.Errorf("line = %q", line)
	}
	if out.String() != "> " {
		t.Errorf("prompt output = %q", out.String())
	}

	line, err = r.ReadLine("")
	if err != nil {
		t.Fatal(err)
	}
	if line != "second" {
		t.Errorf("line = %q", line)
	}
}

func TestStdinReader_EOFWithoutNewline(t *testing.T) {
	r := NewStdinReader(strings.NewReader("last line"), io.Discard)

	// A final line missing its newline still counts.
	line, err := r.ReadLine("")
	if err != nil {
		t.Fatal(err)
	}
	if line != "last line" {
		t.Errorf("line = %q", line)
	}

	if _, err := r.ReadLine(""); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestStdinReader_EmptySource(t *testing.T) {
	r := NewStdinReader(strings.NewReader(""), io.Discard)
	if _, err := r.ReadLine("> "); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestScriptedReader_TrimsInputs(t *testing.T) {
	r := NewScriptedReader([]string{"  hint  ", "skip"})

	line, err := r.ReadLine("")
	if err != nil {
		t.Fatal(err)
	}
	if line != "hint" {
		t.Errorf("line = %q", line)
	}

	line, err = r.ReadLine("")
	if err != nil {
		t.Fatal(err)
	}
	if line != "skip" {
		t.Errorf("line = %q", line)
	}
}
