package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type Output struct {
	mu           sync.Mutex
	out          io.Writer
	errOut       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		out:          os.Stdout,
		errOut:       os.Stderr,
		enableColors: isTerminal(),
	}
}

// NewWriterOutput prints to the given writers without colors.
func NewWriterOutput(out, errOut io.Writer) *Output {
	return &Output{out: out, errOut: errOut}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Green(text string) string {
	return o.color("\033[32m", text)
}

func (o *Output) Yellow(text string) string {
	return o.color("\033[33m", text)
}

func (o *Output) Red(text string) string {
	return o.color("\033[31m", text)
}

func (o *Output) Gray(text string) string {
	return o.color("\033[90m", text)
}

func (o *Output) color(code, text string) string {
	if !o.enableColors {
		return text
	}
	return code + text + "\033[0m"
}

func (o *Output) Printf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.out, format, args...)
}

func (o *Output) Errorf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.errOut, format, args...)
}

func (o *Output) PrintHeader(msg string) {
	o.Printf("%s\n\n", msg)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	o.Printf("  "+emoji+" "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	o.Printf("  "+o.Green("✓ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	o.Printf("  "+o.Yellow("⚠ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	o.Errorf("  "+o.Red("✗ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	o.Printf("    %s\n", path)
}

func (o *Output) PrintDone(msg string) {
	o.Printf("%s\n", msg)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
