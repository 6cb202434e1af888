package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dd0wney/wija/pkg/genealogy"
	"github.com/dd0wney/wija/pkg/logging"
)

func newGenerationCmd(a *app) *cobra.Command {
	var (
		familyPath string
		rootID     string
		personID   string
		locale     string
		script     string
		layout     string
	)

	cmd := &cobra.Command{
		Use:     "generation",
		Aliases: []string{"gen"},
		Short:   "Show generations counted from the root ancestor",
		Long: `Without --person, lists every member of the family with their generation.
With --person, prints the generation of one member. The root ancestor is the
person flagged isRootAncestor, or the first person who is nobody's child,
unless --root is given.`,
		Example: `  wija generation --family keluarga.yaml
  wija gen --family keluarga.yaml --person p8 --locale en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.locale(locale)
			if err != nil {
				return err
			}
			family, err := a.loadFamily(familyPath)
			if err != nil {
				return err
			}

			root, err := resolveRoot(family, rootID)
			if err != nil {
				return err
			}

			opts := a.displayOptions(script, layout)
			index := family.Index()
			out := cmd.OutOrStdout()

			if personID != "" {
				person, ok := family.Person(personID)
				if !ok {
					return fmt.Errorf("person %q not found in family", personID)
				}

				res := genealogy.Search(person.ID, root.ID, index)
				a.metrics.RecordGenerationQuery(res.Found(), res.Visited)
				a.logger.Debug("generation lookup",
					logging.PersonID(person.ID),
					logging.RootID(root.ID),
					logging.Depth(res.Depth),
					logging.Count(res.Visited),
				)

				_, err := fmt.Fprintf(out, "%s\n%s\n", a.renderName(person, opts), describeDepth(loc, res.Depth))
				return err
			}

			traversal := genealogy.Traverse(root.ID, index)
			a.metrics.RecordTraversal(traversal.Visited)

			t := newTable("ID", nameHeader(loc), generationHeader(loc), "")
			for _, p := range family.Persons {
				depth, ok := traversal.Depths[p.ID]
				if !ok {
					depth = genealogy.Unknown
				}
				gen := "-"
				if depth != genealogy.Unknown {
					gen = strconv.Itoa(depth)
				}
				t.Row(p.ID, a.renderName(p, opts), gen, genealogy.LabelFor(loc, depth))
			}

			title := family.Name
			if title == "" {
				title = familyPath
			}
			_, err = fmt.Fprintf(out, "%s\n%s\n", title, t.Render())
			return err
		},
	}

	cmd.Flags().StringVarP(&familyPath, "family", "f", "", "family file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&rootID, "root", "", "id of the root ancestor")
	cmd.Flags().StringVarP(&personID, "person", "p", "", "id of the person to look up")
	cmd.Flags().StringVar(&locale, "locale", "", "label language: id or en")
	cmd.Flags().StringVar(&script, "script", "", "name script: latin, lontara or both")
	cmd.Flags().StringVar(&layout, "layout", "", "stacked or inline, when both scripts are shown")

	return cmd
}

func resolveRoot(family *genealogy.Family, rootID string) (genealogy.Person, error) {
	if rootID != "" {
		root, ok := family.Person(rootID)
		if !ok {
			return genealogy.Person{}, fmt.Errorf("root %q not found in family", rootID)
		}
		return root, nil
	}

	root, ok := family.Root()
	if !ok {
		return genealogy.Person{}, fmt.Errorf("family has no root ancestor; pass --root")
	}
	return root, nil
}

func describeDepth(loc genealogy.Locale, depth int) string {
	if depth == genealogy.Unknown {
		if loc == genealogy.LocaleEnglish {
			return "Not a descendant of the root ancestor"
		}
		return "Bukan keturunan leluhur"
	}
	return fmt.Sprintf("%s %d: %s", generationHeader(loc), depth, genealogy.LabelFor(loc, depth))
}

func nameHeader(loc genealogy.Locale) string {
	if loc == genealogy.LocaleEnglish {
		return "Name"
	}
	return "Nama"
}

func generationHeader(loc genealogy.Locale) string {
	if loc == genealogy.LocaleEnglish {
		return "Generation"
	}
	return "Generasi"
}
