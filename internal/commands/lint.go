package commands

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/markup"
	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/styles"
)

// Lint validates one note file against the markup grammar. It parses with
// strict recovery, so the first fault is reported exactly as the parser saw
// it and the exit status is non-zero.
func Lint(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: notemark lint <file>")
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

	p := markup.NewParser(
		markup.WithHandler(markup.StrictRecovery{}),
		markup.WithLogger(lg),
	)
	start := time.Now()
	res, err := p.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.Error(path+":", cfg.Color), err)
		os.Exit(1)
	}
	lg.ParseCompleted(path, len(res.Document.Blocks), len(res.Warnings), time.Since(start))

	fmt.Printf("%s %s\n",
		styles.Success("ok", cfg.Color),
		styles.Dim(fmt.Sprintf("%s (%d blocks)", path, len(res.Document.Blocks)), cfg.Color))
}
