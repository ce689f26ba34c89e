package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/gstcalc/internal/cli"
	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/config"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/session"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// historyTimeout bounds listing the history once the batch has stopped.
const historyTimeout = 5 * time.Second

// batchEntry is one parsed input line.
type batchEntry struct {
	amount    string
	note      string
	line      int
	rate      model.Rate
	inclusive bool
}

func batchCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Calculate GST for many amounts",
		Long: `Read one calculation per line from FILE, or stdin when FILE is
omitted or "-", and print the resulting history, most recent first.

Each line has the form amount[,rate[,type[,note]]] where type is
inclusive or exclusive. Missing fields fall back to the configured
defaults. Quote amounts that contain digit grouping, e.g. "1,18,000".
Blank lines and lines starting with # are ignored; lines whose amount is
not a number are skipped.`,
		Example: `  gst batch invoices.csv
  printf '1000\n1180,18,inclusive,Laptop\n' | gst batch --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(config.ExpandPath(args[0]))
				if err != nil {
					return common.NewUserError(fmt.Sprintf("cannot open %s", args[0]), err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			sess, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession(sess)

			b := batchRun{
				sess:         sess,
				handler:      handler,
				bar:          newBatchProgress(cmd.ErrOrStderr()),
				defRate:      a.cfg.DefaultRate,
				defInclusive: a.cfg.Inclusive,
			}
			if err := b.run(ctx, cli.NewLineReader(in)); err != nil {
				return err
			}

			// An interrupt cancels both ctx and the root context, but what was
			// recorded up to that point is still printed.
			listCtx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), historyTimeout)
			defer cancel()
			records, err := sess.History(listCtx)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]recordJSON, len(records))
				for i, r := range records {
					out[i] = toRecordJSON(r)
				}
				if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintln(cmd.OutOrStdout(), cli.RenderHistory(records)); err != nil {
				return err
			}

			common.LogInfo("batch finished", common.Fields{
				"recorded":    b.recorded,
				"skipped":     b.skipped,
				"interrupted": ctx.Err() != nil,
			})

			summary := fmt.Sprintf("Recorded %d calculations", b.recorded)
			if b.skipped > 0 {
				summary += fmt.Sprintf(", skipped %d lines without a valid amount", b.skipped)
			}
			_, err = fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(summary))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the history as JSON")
	return cmd
}

// parseBatchLine parses amount[,rate[,type[,note]]]. Empty optional fields
// take the defaults. The amount itself is not validated here.
func parseBatchLine(line string, defRate model.Rate, defInclusive bool) (batchEntry, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	fields, err := r.Read()
	if err != nil {
		return batchEntry{}, fmt.Errorf("malformed line: %w", err)
	}

	entry := batchEntry{
		amount:    strings.TrimSpace(fields[0]),
		rate:      defRate,
		inclusive: defInclusive,
	}

	if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
		rate, err := model.ParseRate(fields[1])
		if err != nil {
			return batchEntry{}, err
		}
		entry.rate = rate
	}

	if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
		inclusive, err := parseMode(fields[2])
		if err != nil {
			return batchEntry{}, err
		}
		entry.inclusive = inclusive
	}

	if len(fields) > 3 {
		entry.note = strings.TrimSpace(strings.Join(fields[3:], ","))
	}

	return entry, nil
}

// ErrInvalidMode is returned for an unrecognised GST type.
var ErrInvalidMode = errors.New("invalid GST type")

// parseMode accepts inclusive/exclusive, their short forms, and booleans.
func parseMode(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inclusive", "incl", "inc", "i":
		return true, nil
	case "exclusive", "excl", "exc", "e":
		return false, nil
	}
	inclusive, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q (want inclusive or exclusive)", ErrInvalidMode, s)
	}
	return inclusive, nil
}

// batchRun calculates batch lines one at a time as they are read.
type batchRun struct {
	sess         *session.Session
	handler      *cli.InterruptHandler
	bar          *progressbar.ProgressBar
	defRate      model.Rate
	defInclusive bool
	recorded     int
	skipped      int
}

// run reads lines until EOF or until ctx is done. Lines already calculated
// stay recorded when it stops early.
func (b *batchRun) run(ctx context.Context, reader *cli.LineReader) error {
	if b.bar != nil {
		defer func() {
			if err := b.bar.Finish(); err != nil {
				slog.Warn("Failed to finish progress bar", "error", err)
			}
		}()
	}

	for {
		line, err := reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseBatchLine(line, b.defRate, b.defInclusive)
		if err != nil {
			return common.NewUserError(fmt.Sprintf("line %d", reader.Line()), err)
		}
		entry.line = reader.Line()

		if err := b.calculate(ctx, entry); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (b *batchRun) calculate(ctx context.Context, e batchEntry) error {
	if err := b.sess.SetRate(e.rate); err != nil {
		return err
	}
	b.sess.SetInclusive(e.inclusive)
	b.sess.SetAmount(e.amount)
	b.sess.SetNote(e.note)

	_, ok, err := b.sess.Calculate(ctx)
	if err != nil {
		return err
	}
	if ok {
		b.recorded++
		b.handler.SetProcessed(b.recorded)
	} else {
		b.skipped++
		common.LogDebug("skipped batch line", common.Fields{"line": e.line, "amount": e.amount})
	}

	if b.bar != nil {
		if err := b.bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
	return nil
}

// newBatchProgress returns a spinner counting processed lines on w, or nil
// when w is not a terminal. The number of lines is unknown up front.
func newBatchProgress(w io.Writer) *progressbar.ProgressBar {
	if !isTerminalWriter(w) {
		return nil
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan][bold]Calculating...[reset]"),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
