// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/gamo/vocab/pkg/vocab"

	"github.com/spf13/cobra"
)

func newWordsCommand(app *App) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print every word, one per line",
		Long: `Print the flat word list: every record of every data file, in folder
order, then type order, then line order. Duplicates are kept.`,
		Args: cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.words(cmd.Context(), vocab.TypeName(typ))
		}),
	}

	cmd.Flags().StringVar(&typ, "type", "", "only print words of this type")
	return cmd
}

func (a *App) words(ctx context.Context, typ vocab.TypeName) error {
	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	v, _, err := a.build(ctx, sess)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(a.stdout)
	if typ == "" {
		for _, word := range v.Words() {
			fmt.Fprintln(w, word)
		}
	} else {
		for _, rec := range v.OfType(typ) {
			fmt.Fprintln(w, rec.Word)
		}
	}
	return w.Flush()
}
