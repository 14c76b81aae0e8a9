package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harrison/fortuner/internal/models"
)

// NoFortunes is printed when random mode has nothing to choose from.
const NoFortunes = "No fortunes found"

// Printer writes fortune output. Source headers are colored only when color is enabled.
type Printer struct {
	writer io.Writer
	header *color.Color
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, colorOutput bool) *Printer {
	header := color.New(color.FgCyan, color.Bold)
	if colorOutput {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	return &Printer{
		writer: w,
		header: header,
	}
}

// Header prints the "(source)" line that opens a group of matches.
func (p *Printer) Header(source string) error {
	_, err := fmt.Fprintln(p.writer, p.header.Sprintf("(%s)", source))
	return err
}

// Record prints a record body followed by the delimiter line.
func (p *Printer) Record(text string) error {
	_, err := fmt.Fprintf(p.writer, "%s\n%s\n", text, models.Delimiter)
	return err
}

// Fortune prints a single selected fortune.
func (p *Printer) Fortune(text string) error {
	_, err := fmt.Fprintln(p.writer, text)
	return err
}

// Fallback prints the sentinel used when there are no fortunes.
func (p *Printer) Fallback() error {
	_, err := fmt.Fprintln(p.writer, NoFortunes)
	return err
}
