// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"fmt"
	"os"
	"strings"

	"github.com/stack-community/stack-server/internal/value"
)

// deescape translates the two-character sequences the lexer preserves
// back into control characters for output.
var deescape = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r")

func (e *Executor) opWriteFile() {
	path := e.Pop().AsString()
	f, err := os.Create(path)
	if err != nil {
		e.logPrint(fmt.Sprintf("Error! %v\n", err))
		e.Push(value.Error("create-file"))
		return
	}
	defer f.Close()
	if _, err := f.WriteString(e.Pop().AsString()); err != nil {
		e.logPrint(fmt.Sprintf("Error! %v\n", err))
		e.Push(value.Error("write-file"))
	}
}

func (e *Executor) opReadFile() {
	path := e.Pop().AsString()
	data, err := os.ReadFile(path)
	if err != nil {
		e.logPrint(fmt.Sprintf("Error! %v\n", err))
		e.Push(value.Error("read-file"))
		return
	}
	e.Push(value.String(string(data)))
}

func (e *Executor) opReadBinary() {
	path := e.Pop().AsString()
	data, err := os.ReadFile(path)
	if err != nil {
		e.Push(value.Error("read-binary"))
		return
	}
	e.Push(value.Binary(data))
}

func (e *Executor) opInput() {
	prompt := e.Pop().AsString()
	line, _ := e.ReadLine(prompt)
	e.Push(value.String(line))
}

// ReadLine prompts on the program output stream and reads one trimmed
// line from the program input stream. The REPL shares it with the
// input operator so both drain the same buffered reader.
func (e *Executor) ReadLine(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)
	line, err := e.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (e *Executor) opPrint() {
	text := deescape.Replace(e.Pop().AsString())
	if e.mode == ModeDebug {
		fmt.Fprintf(e.out, "[Output]: %s\n", text)
		return
	}
	fmt.Fprint(e.out, text)
}

func (e *Executor) opPrintln() {
	text := deescape.Replace(e.Pop().AsString())
	if e.mode == ModeDebug {
		fmt.Fprintf(e.out, "[Output]: %s\n", text)
		return
	}
	fmt.Fprintln(e.out, text)
}

func (e *Executor) opArgsCmd() {
	items := make([]value.Value, 0, len(os.Args))
	for _, arg := range os.Args {
		items = append(items, value.String(arg))
	}
	e.Push(value.List(items))
}
