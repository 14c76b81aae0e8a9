package parser

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/fortuner/internal/models"
)

// Input is a line-oriented fortune source.
type Input interface {
	// ReadLine returns the next line including its terminator. At end of
	// input it returns the final partial line, if any, with io.EOF.
	ReadLine() (string, error)
	// Source is the name records from this input are tagged with.
	Source() string
	Close() error
}

// fileInput reads lines from a named file.
type fileInput struct {
	file   *os.File
	reader *bufio.Reader
}

func (in *fileInput) ReadLine() (string, error) { return in.reader.ReadString('\n') }
func (in *fileInput) Source() string            { return filepath.Base(in.file.Name()) }
func (in *fileInput) Close() error              { return in.file.Close() }

// stdinInput reads lines from standard input. Closing it leaves stdin open.
type stdinInput struct {
	reader *bufio.Reader
}

func (in *stdinInput) ReadLine() (string, error) { return in.reader.ReadString('\n') }
func (in *stdinInput) Source() string            { return models.StdinSource }
func (in *stdinInput) Close() error              { return nil }

// Parser opens and reads fortune sources. Stdin backs the "-" source.
type Parser struct {
	stdin io.Reader
}

// New creates a Parser reading "-" from stdin.
func New(stdin io.Reader) *Parser {
	return &Parser{stdin: stdin}
}

// Open returns the Input for a resolved path, selecting stdin for "-".
func (p *Parser) Open(path string) (Input, error) {
	if path == models.StdinSource {
		return &stdinInput{reader: bufio.NewReader(p.stdin)}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileInput{file: f, reader: bufio.NewReader(f)}, nil
}

// Open is Parser.Open with os.Stdin.
func Open(path string) (Input, error) {
	return New(os.Stdin).Open(path)
}

// trimLineEnding removes a trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
