package settings

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/ctxlog"
)

// Layout names the marker file that identifies an LOVD installation and the
// subdirectory it may live in instead of the installation root.
type Layout struct {
	MarkerFile string
	SourceDir  string
}

// DefaultLayout is the layout of a stock LOVD3 checkout.
var DefaultLayout = Layout{MarkerFile: "config.ini.php", SourceDir: "src"}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLayout overrides DefaultLayout for KindLOVDPath requests.
func WithLayout(l Layout) Option {
	return func(v *Verifier) {
		v.layout = l
	}
}

// Verifier prompts for settings and commits verified values into a store.
type Verifier struct {
	in     *bufio.Reader
	out    io.Writer
	fsys   afero.Fs
	store  *config.Store
	layout Layout
	styles styles
}

// New creates a Verifier that reads answers from in, writes prompts and
// diagnostics to out, checks paths against fsys and commits into store.
func New(in io.Reader, out io.Writer, fsys afero.Fs, store *config.Store, opts ...Option) *Verifier {
	v := &Verifier{
		in:     bufio.NewReader(in),
		out:    out,
		fsys:   fsys,
		store:  store,
		layout: DefaultLayout,
		styles: newStyles(out),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify blocks until the user gives a value that satisfies req, commits it
// and returns it. Bad input is reported and asked for again without limit.
//
// A malformed request fails immediately with ErrUnknownKind, ErrNoChoices or
// ErrMalformedRange. The loop also ends with ErrInputClosed when the input
// runs out, or with the context's error once ctx is done.
func (v *Verifier) Verify(ctx context.Context, req Request) (config.Value, error) {
	logger := ctxlog.FromContext(ctx).With("key", req.Key, "kind", req.Kind.String())

	r, err := v.newRule(req)
	if err != nil {
		logger.Error("Invalid verification request.", "error", err)
		return config.Value{}, err
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return config.Value{}, err
		}

		def := v.store.Default(req.Key)
		if err := v.prompt(req.Message, def); err != nil {
			return config.Value{}, err
		}

		input, err := v.readLine()
		if err != nil {
			return config.Value{}, err
		}
		if input == "" && def != "" {
			input = def
		}

		val, err := r.accept(input, def)
		if err == nil {
			v.store.Commit(req.Key, val)
			logger.Debug("Setting committed.", "value", val.String(), "attempts", attempt)
			return val, nil
		}

		var rejection *Rejection
		if !errors.As(err, &rejection) {
			return config.Value{}, fmt.Errorf("verifying %s: %w", req.Key, err)
		}
		logger.Debug("Input rejected.", "input", input, "reason", rejection.Reason, "attempt", attempt)
		if err := v.diagnose(rejection.Reason); err != nil {
			return config.Value{}, err
		}
	}
}

func (v *Verifier) prompt(message, def string) error {
	var b strings.Builder
	b.WriteString("  ")
	// Styles pad multi-line text to a block, so each line is rendered alone.
	for i, line := range strings.Split(message, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.styles.prompt.Render(line))
	}
	if def != "" {
		b.WriteString(" ")
		b.WriteString(v.styles.def.Render("[" + def + "]"))
	}
	b.WriteString(" : ")
	_, err := io.WriteString(v.out, b.String())
	return err
}

func (v *Verifier) diagnose(reason string) error {
	for _, line := range strings.Split(reason, "\n") {
		if _, err := fmt.Fprintf(v.out, "    %s\n", v.styles.diagnostic.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

// readLine returns the next input line with surrounding whitespace removed.
// A final line without a newline is still returned; after that the input is
// reported as closed.
func (v *Verifier) readLine() (string, error) {
	line, err := v.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}
