package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nullref"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("nullref failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "nullref",
		Short:         "Inspect and build packed boolean bytes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newPackCmd(), newUnpackCmd(), newSetCmd(), newSortCmd())
	return cmd
}

// parseRaw accepts decimal, 0x and 0b literals.
func parseRaw(s string) (nullref.BoolByte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return nullref.BoolByte{}, errors.Wrapf(nullref.ErrInvalidArgument, "raw value %q: %v", s, err)
	}
	return nullref.FromRaw(uint8(v)), nil
}

func printSummary(w io.Writer, b nullref.BoolByte) {
	fmt.Fprintf(w, "raw: %d\nbin: %s\nset: %d\n", b.RawData(), b, b.Count())
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [flags...]",
		Short: "Pack up to 8 booleans into one byte",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]bool, len(args))
			for i, a := range args {
				v, err := strconv.ParseBool(a)
				if err != nil {
					return errors.Wrapf(err, "flag %d", i)
				}
				values[i] = v
			}
			b, err := nullref.New(values...)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"raw": b.RawData(), "count": len(values)}).Debug("packed")
			printSummary(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <raw>",
		Short: "List every flag stored in a raw byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseRaw(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			on := color.New(color.FgGreen, color.Bold)
			for i, v := range b.All() {
				if v {
					on.Fprintf(w, "%d: true\n", i)
				} else {
					fmt.Fprintf(w, "%d: false\n", i)
				}
			}
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	var index int
	var value bool
	cmd := &cobra.Command{
		Use:   "set <raw>",
		Short: "Replace one flag of a raw byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseRaw(args[0])
			if err != nil {
				return err
			}
			before := b.RawData()
			if err := b.Set(index, value); err != nil {
				return err
			}
			log.WithFields(log.Fields{"index": index, "before": before, "after": b.RawData()}).Debug("set flag")
			printSummary(cmd.OutOrStdout(), b)
			return nil
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "flag index in [0,7]")
	cmd.Flags().BoolVar(&value, "value", true, "new flag value")
	return cmd
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <raw>...",
		Short: "Print raw bytes in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]nullref.BoolByte, 0, len(args))
			for _, a := range args {
				b, err := parseRaw(a)
				if err != nil {
					return err
				}
				list = append(list, b)
			}
			sort.SliceStable(list, func(i, j int) bool { return nullref.Compare(list[i], list[j]) < 0 })
			w := cmd.OutOrStdout()
			for _, b := range list {
				fmt.Fprintf(w, "%d\t%s\n", b.RawData(), b)
			}
			return nil
		},
	}
}
