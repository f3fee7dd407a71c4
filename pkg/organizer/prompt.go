package organizer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kasuboski/episodez/pkg/library"
)

var ErrNoInput = errors.New("no input left to choose a duplicate")

var _ DuplicateResolver = (*PromptResolver)(nil)

// PromptResolver asks on out which duplicate to keep and reads the answer from in.
// It keeps asking until it gets a valid answer. A read blocks until a line arrives,
// the context is only checked between attempts.
type PromptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPromptResolver(in io.Reader, out io.Writer) *PromptResolver {
	return &PromptResolver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *PromptResolver) Resolve(ctx context.Context, key library.EpisodeKey, files []library.VideoFile) (Choice, error) {
	fmt.Fprintf(p.out, "\nFound duplicate episodes for %s:\n", key)
	for i, f := range files {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, f.Name)
		fmt.Fprintf(p.out, "   Path: %s\n", f.Path)
		fmt.Fprintf(p.out, "   Size: %s\n", FormatMegabytes(f.Size))
	}

	for {
		if err := ctx.Err(); err != nil {
			return Choice{}, err
		}

		fmt.Fprint(p.out, "\nEnter the number of the file you want to keep (or 'all' to keep all): ")
		line, err := p.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && input == "" {
			if errors.Is(err, io.EOF) {
				return Choice{}, ErrNoInput
			}
			return Choice{}, err
		}

		if strings.EqualFold(input, "all") {
			return Choice{KeepAll: true}, nil
		}

		n, convErr := strconv.Atoi(input)
		if convErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number or 'all'.")
			continue
		}
		if n < 1 || n > len(files) {
			fmt.Fprintln(p.out, "Invalid choice. Please enter a valid number.")
			continue
		}

		return Choice{Index: n - 1}, nil
	}
}

// FormatMegabytes renders size in MiB with two decimals, e.g. "95.37 MB"
func FormatMegabytes(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}
