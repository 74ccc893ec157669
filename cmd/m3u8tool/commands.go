package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mogiioin/hls-tagline/m3u8"
)

func newStripAdsCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "strip-ads <media.m3u8|->",
		Short: "Remove stitched advertisement segments from a media playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readMedia(cmd, args[0])
			if err != nil {
				return err
			}
			segments, entries := a.cfg.Filter().Apply(p)
			a.logger.Info().
				Str("input", args[0]).
				Int("removed_segments", segments).
				Int("removed_entries", entries).
				Int("segments", len(p.Segments)).
				Msg("ads stripped")
			return a.writeMedia(cmd, p, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of standard output")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "format <media.m3u8|->",
		Short: "Re-emit a media playlist in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readMedia(cmd, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug().
				Str("input", args[0]).
				Int("segments", len(p.Segments)).
				Int("entries", len(p.ExtEntries)).
				Float64("duration", p.TotalDuration()).
				Msg("media playlist parsed")
			return a.writeMedia(cmd, p, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of standard output")
	return cmd
}

func newRenditionsCmd(a *app) *cobra.Command {
	var (
		name  string
		first bool
	)
	cmd := &cobra.Command{
		Use:   "renditions <master.m3u8|->",
		Short: "List renditions of a master playlist or resolve one to its variant URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readMaster(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case first:
				uri, ok := p.FirstVariantURI()
				if !ok {
					return fmt.Errorf("%s: no variant streams", args[0])
				}
				fmt.Fprintln(w, uri)
			case name != "":
				uri, ok := p.RenditionURI(name)
				if !ok {
					// names are stored verbatim, so retry the quoted form
					uri, ok = p.RenditionURI(`"` + name + `"`)
				}
				if !ok {
					return fmt.Errorf("%s: no variant for rendition %s", args[0], name)
				}
				fmt.Fprintln(w, uri)
			default:
				names := p.RenditionNames()
				a.logger.Debug().Int("renditions", len(names)).Msg("master playlist parsed")
				for _, n := range names {
					fmt.Fprintln(w, m3u8.DeQuote(n))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "print the variant URI of this rendition")
	cmd.Flags().BoolVar(&first, "first", false, "print the URI of the first variant stream")
	cmd.MarkFlagsMutuallyExclusive("name", "first")
	return cmd
}
