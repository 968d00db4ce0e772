// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'rpn.cli'.
func trace() tracing.Trace {
	return tracing.Select("rpn.cli")
}

// Formatter writes items to an output.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors and tables.
type DefaultFormatter struct {
	Color bool // print errors in red
}

// Format writes item to w.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := io.WriteString(w, t+"\n")
		return err == nil, err
	case error:
		msg := "error: " + t.Error()
		if df.Color {
			msg = prtxt.FgRed.Sprint(msg)
		}
		_, err := io.WriteString(w, msg+"\n")
		return err == nil, err
	case table.Writer:
		if t == nil {
			io.WriteString(w, "▶ (empty table)\n")
		} else {
			io.WriteString(w, t.Render())
			io.WriteString(w, "\n")
		}
		return true, nil
	default:
		io.WriteString(w, fmt.Sprintf("▶ object of type %T\n", t))
		return false, nil
	}
}
