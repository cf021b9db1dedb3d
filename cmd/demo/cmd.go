package demo

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/linear-map/utils/collections"
	"github.com/tuannh982/linear-map/utils/logging"
)

var Cmd = &cobra.Command{
	Use:   "demo",
	Short: "Exercise a linear map with a few string keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return Run(cmd.OutOrStdout())
	},
}

func Run(out io.Writer) error {
	logger := logging.ForCommand("demo")
	m := collections.NewLinearMap[string, int]()
	m.Put("Word1", 1)
	m.Put("Word2", 2)
	logger.WithField("size", m.Size()).Debug("map filled")

	if v, ok := m.Get("Word1"); ok {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	keys := m.KeySet().Entries()
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := m.Get(k)
		if _, err := fmt.Fprintf(out, "%s, %d\n", k, v); err != nil {
			return err
		}
	}
	return nil
}
