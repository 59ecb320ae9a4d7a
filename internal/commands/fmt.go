package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/config"
	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/markup"
	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/styles"
)

// Fmt canonicalizes one note file: parse with lenient recovery, serialize
// back to the canonical wire form. By default the result goes to stdout;
// --write rewrites the file and --diff shows what would change.
func Fmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("write", false, "rewrite the file in place")
	diff := fs.Bool("diff", false, "print a unified diff instead of the result")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: notemark fmt [--write|--diff] <file>")
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	cfg, lg, cleanup := setup()
	defer cleanup()

	src, err := readNote(path, cfg.MaxInputBytes)
	if err != nil {
		lg.FileError(path, err)
		fmt.Fprintln(os.Stderr, styles.Error(err.Error(), cfg.Color))
		os.Exit(1)
	}

	opts := []markup.Option{markup.WithLogger(lg)}
	if cfg.Mode == config.ModeStrict {
		opts = append(opts, markup.WithHandler(markup.StrictRecovery{}))
	}
	p := markup.NewParser(opts...)
	res, err := p.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.Error(path+":", cfg.Color), err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, styles.Warning("warning: "+w.String(), cfg.Color))
	}

	canonical := markup.Serialize(res.Document) + "\n"

	switch {
	case *diff:
		edits := myers.ComputeEdits(span.URIFromPath(path), src, canonical)
		fmt.Print(gotextdiff.ToUnified(path, path+" (canonical)", src, edits))
	case *write:
		if err := os.WriteFile(path, []byte(canonical), 0644); err != nil {
			lg.FileError(path, err)
			fmt.Fprintln(os.Stderr, styles.Error(err.Error(), cfg.Color))
			os.Exit(1)
		}
		fmt.Printf("%s %s\n", styles.Success("formatted", cfg.Color), path)
	default:
		fmt.Print(canonical)
	}
}
