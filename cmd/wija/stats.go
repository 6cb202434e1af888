package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dd0wney/wija/pkg/genealogy"
)

var statLabels = map[genealogy.Locale][]string{
	genealogy.LocaleIndonesian: {"Total Anggota", "Generasi", "Laki-laki", "Perempuan", "Masih Hidup", "Almarhum", "Rata-rata Anak", "Kelahiran"},
	genealogy.LocaleEnglish:    {"Members", "Generations", "Male", "Female", "Living", "Deceased", "Avg. Children", "Births"},
}

func newStatsCmd(a *app) *cobra.Command {
	var (
		familyPath string
		locale     string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize a family",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.locale(locale)
			if err != nil {
				return err
			}
			family, err := a.loadFamily(familyPath)
			if err != nil {
				return err
			}

			stats := genealogy.ComputeStats(family.Persons)
			out := cmd.OutOrStdout()

			if asJSON {
				return json.NewEncoder(out).Encode(stats)
			}

			births := "-"
			if stats.OldestBirthYear != 0 {
				births = fmt.Sprintf("%d - %d", stats.OldestBirthYear, stats.NewestBirthYear)
			}

			labels := statLabels[loc]
			values := []string{
				strconv.Itoa(stats.Total),
				strconv.Itoa(stats.Generations),
				strconv.Itoa(stats.Male),
				strconv.Itoa(stats.Female),
				strconv.Itoa(stats.Living),
				strconv.Itoa(stats.Deceased),
				strconv.FormatFloat(stats.AvgChildrenPerParent, 'f', 1, 64),
				births,
			}

			t := newTable()
			for i, label := range labels {
				t.Row(label, values[i])
			}
			_, err = fmt.Fprintf(out, "%s\n%s\n", family.Name, t.Render())
			return err
		},
	}

	cmd.Flags().StringVarP(&familyPath, "family", "f", "", "family file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&locale, "locale", "", "label language: id or en")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the statistics as JSON")

	return cmd
}
