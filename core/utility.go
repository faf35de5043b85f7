package core

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKeypress holds the process until a line is read from in, so a
// failure message stays readable when started from a console. It does
// nothing when in is not a terminal.
func WaitForKeypress(in *os.File, out io.Writer) {
	if !term.IsTerminal(int(in.Fd())) {
		return
	}
	fmt.Fprintln(out, "Press enter to exit")
	bufio.NewReader(in).ReadString('\n')
}
