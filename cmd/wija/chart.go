package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/wija/pkg/logging"
	"github.com/dd0wney/wija/pkg/lontara"
)

func newChartCmd(a *app) *cobra.Command {
	var keyboard bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the Lontara syllabary",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if keyboard {
				_, err := fmt.Fprintln(out, renderKeyboard())
				return err
			}

			rows := lontara.Chart()
			a.logger.Debug("rendering chart", logging.Count(len(rows)))

			t := newTable("", "a", "i", "u", "e", "o")
			for _, row := range rows {
				cells := []string{strings.ToUpper(firstNonEmpty(row.Base, "-"))}
				for _, c := range row.Cells {
					cells = append(cells, c.Lontara)
				}
				t.Row(cells...)
			}
			_, err := fmt.Fprintln(out, t.Render())
			return err
		},
	}

	cmd.Flags().BoolVarP(&keyboard, "keyboard", "k", false, "show the syllable keyboard layout instead")
	return cmd
}

// renderKeyboard lays out the keyboard rows as glyph over syllable
func renderKeyboard() string {
	t := newTable()
	for _, row := range lontara.KeyboardRows() {
		cells := make([]string, len(row))
		for i, syllable := range row {
			glyph, ok := lontara.SyllableGlyph(syllable)
			if !ok {
				glyph = "?"
			}
			label := syllable
			if syllable == " " {
				glyph, label = "␣", "spasi"
			}
			cells[i] = glyph + "\n" + mutedStyle.Render(label)
		}
		t.Row(cells...)
	}
	return keyboardStyle.Render(t.Render())
}
