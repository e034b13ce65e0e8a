package iterables

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// BatchFormatter interface for pretty batch progress output
type BatchFormatter interface {
	PrintItemStart(index int)
	PrintItemError(index int, err error)
	PrintBatchSummary(processed, failed int)
}

// ConsoleBatchFormatter writes colorized progress output to a writer.
type ConsoleBatchFormatter struct {
	out io.Writer
}

// NewConsoleBatchFormatter creates a formatter writing to out.
func NewConsoleBatchFormatter(out io.Writer) *ConsoleBatchFormatter {
	return &ConsoleBatchFormatter{out: out}
}

func (f *ConsoleBatchFormatter) PrintItemStart(index int) {
	fmt.Fprintln(f.out, color.CyanString("Processing item %d...", index))
}

func (f *ConsoleBatchFormatter) PrintItemError(index int, err error) {
	fmt.Fprintln(f.out, color.RedString("Item %d failed: %s", index, err.Error()))
}

func (f *ConsoleBatchFormatter) PrintBatchSummary(processed, failed int) {
	if failed > 0 {
		fmt.Fprintln(f.out, color.YellowString("Processed %d items (%d failed)", processed, failed))
		return
	}
	fmt.Fprintln(f.out, color.GreenString("Processed %d items", processed))
}

// NullBatchFormatter is a no-op implementation
type NullBatchFormatter struct{}

func NewNullBatchFormatter() *NullBatchFormatter {
	return &NullBatchFormatter{}
}

func (f *NullBatchFormatter) PrintItemStart(index int) {}

func (f *NullBatchFormatter) PrintItemError(index int, err error) {}

func (f *NullBatchFormatter) PrintBatchSummary(processed, failed int) {}
