package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/wija/pkg/lontara"
)

func newTransliterateCmd(a *app) *cobra.Command {
	var (
		details bool
		asJSON  bool
		script  string
		layout  string
	)

	cmd := &cobra.Command{
		Use:     "transliterate [TEXT...]",
		Aliases: []string{"tr"},
		Short:   "Convert Latin text to Lontara",
		Long: `Converts the arguments, joined by spaces, to Lontara. With no arguments each
line of standard input is converted separately.`,
		Example: `  wija transliterate Andi Mappanyukki
  wija tr --details ngka
  echo "Siti Aminah" | wija tr --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := []string{strings.Join(args, " ")}
			if len(args) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = lines
			}

			out := cmd.OutOrStdout()
			opts := lontara.DisplayOptions{Mode: lontara.ScriptLontara}
			if script != "" {
				opts = a.displayOptions(script, layout)
			}

			for _, text := range inputs {
				res := a.engine.Transliterate(text)
				if err := writeResult(out, text, res, opts, details, asJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "show how each part of the input was converted")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result and trace as JSON")
	cmd.Flags().StringVar(&script, "script", "", "latin, lontara or both (default lontara)")
	cmd.Flags().StringVar(&layout, "layout", "", "stacked or inline, when both scripts are shown")

	return cmd
}

type jsonResult struct {
	Input   string           `json:"input"`
	Lontara string           `json:"lontara"`
	Details []lontara.Detail `json:"details,omitempty"`
	Dropped int              `json:"dropped"`
}

func writeResult(w io.Writer, text string, res lontara.Result, opts lontara.DisplayOptions, details, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		out := jsonResult{Input: text, Lontara: res.Lontara, Dropped: res.Dropped}
		if details {
			out.Details = res.Details
		}
		return enc.Encode(out)
	}

	opts.CustomLontara = res.Lontara
	if _, err := fmt.Fprintln(w, lontara.Render(text, opts)); err != nil {
		return err
	}
	if !details {
		return nil
	}

	t := newTable("Pos", "Latin", "Lontara", "Category", "Note")
	for _, d := range res.Details {
		t.Row(strconv.Itoa(d.Pos), strconv.Quote(d.Latin), d.Lontara, string(d.Category), d.Note)
	}
	_, err := fmt.Fprintln(w, t.Render())
	if err != nil {
		return err
	}
	if res.Dropped > 0 {
		_, err = fmt.Fprintf(w, "%d character(s) not recognised\n", res.Dropped)
	}
	return err
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
