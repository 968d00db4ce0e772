// Package main is the rpn command, converting infix expressions to postfix
// notation.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/rpn/cli"
)

func main() {
	var stop context.CancelFunc
	rpn.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// An interrupt outside of terminal raw mode ends the application
	// regularly, even while blocked reading input.
	go func() {
		<-rpn.SignalContext.Done()
		rpn.Exit(0)
	}()
	cli.Execute()
}
