package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/urfave/cli/v2"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = orig
	return <-done
}

// runCommand runs cmd inside a fresh working directory and returns its
// output and error.
func runCommand(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()

	app := &cli.App{
		Commands:       []*cli.Command{cmd},
		ExitErrHandler: func(*cli.Context, error) {},
	}

	var err error
	out := captureOutput(func() {
		err = app.Run(append([]string{"xyzsite", cmd.Name}, args...))
	})
	return out, err
}
