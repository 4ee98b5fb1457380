package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func isTerm(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func errLabel(w io.Writer) string {
	if isTerm(w) {
		return color.New(color.FgRed, color.Bold).Sprint("error")
	}
	return "error"
}

func okLabel(w io.Writer) string {
	if isTerm(w) {
		return color.GreenString("ok")
	}
	return "ok"
}
