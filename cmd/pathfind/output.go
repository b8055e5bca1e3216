package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"
)

const modTimeFormat = "2006-01-02 15:04"

//nolint:gochecknoglobals
var (
	stylePath = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleMeta = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type printerOSProvider interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
}

// printer renders one result line per matched path.
type printer struct {
	out   io.Writer
	osOps printerOSProvider
	opts  *options
}

func newPrinter(out io.Writer, osOps printerOSProvider, opts *options) *printer {
	return &printer{
		out:   out,
		osOps: osOps,
		opts:  opts,
	}
}

func (p *printer) styled(style lipgloss.Style, value string) string {
	if p.opts.noColor {
		return value
	}

	return style.Render(value)
}

// contentDigest hashes the file contents with BLAKE3.
func (p *printer) contentDigest(path string) (string, error) {
	file, err := p.osOps.Open(path)
	if err != nil {
		return "", fmt.Errorf("(print-digest) %w", err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("(print-digest) %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func (p *printer) printPath(path string) error {
	line := p.styled(stylePath, path)

	if p.opts.longFormat {
		info, err := p.osOps.Stat(path)
		if err != nil {
			return fmt.Errorf("(print-long) %w", err)
		}

		meta := fmt.Sprintf("%s  %s", humanize.Bytes(uint64(info.Size())), info.ModTime().Format(modTimeFormat))
		line = fmt.Sprintf("%s  %s", p.styled(styleMeta, meta), line)
	}

	if p.opts.digest {
		info, err := p.osOps.Stat(path)
		if err != nil {
			return fmt.Errorf("(print-digest) %w", err)
		}

		// Only regular files have hashable contents.
		if info.Mode().IsRegular() {
			digest, err := p.contentDigest(path)
			if err != nil {
				return err
			}

			line = fmt.Sprintf("%s  %s", p.styled(styleMeta, digest), line)
		}
	}

	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return fmt.Errorf("(print) %w", err)
	}

	return nil
}
