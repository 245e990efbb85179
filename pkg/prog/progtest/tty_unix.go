//go:build unix

package progtest

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/creack/pty"

	"listdemo/pkg/must"
	"listdemo/pkg/prog"
)

// RunWithTTY is like [Run], but connects stdout of the program to the slave
// side of a newly allocated pseudo terminal. The "\r\n" line endings
// introduced by the terminal are converted back to "\n".
func RunWithTTY(p prog.Program, args ...string) (exit int, stdout, stderr string, err error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return 0, "", "", err
	}
	defer ptmx.Close()

	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		// Reading from the master side fails with EIO once the slave side
		// is closed; everything written before that has been copied.
		io.Copy(&buf, ptmx)
		ch <- buf.String()
	}()

	r0, w0 := must.Pipe()
	w0.Close()
	defer r0.Close()
	w2, get2 := capturedOutput()

	exit = prog.Run([3]*os.File{r0, tty, w2},
		append([]string{"listdemo"}, args...), p)
	tty.Close()
	stdout = strings.ReplaceAll(<-ch, "\r\n", "\n")
	return exit, stdout, get2(), nil
}
