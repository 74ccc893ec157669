package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mogiioin/hls-tagline/internal/config"
	xlog "github.com/mogiioin/hls-tagline/internal/log"
	"github.com/mogiioin/hls-tagline/m3u8"
)

// app holds what the persistent flags resolve to.
type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:          "m3u8tool",
		Short:        "Rewrite and inspect HLS playlists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			level := cfg.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			xlog.Configure(xlog.Config{Level: level, Output: cmd.ErrOrStderr()})
			a.logger = xlog.WithComponent(cmd.Name())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newStripAdsCmd(a), newFormatCmd(a), newRenditionsCmd(a))
	return root
}

// openInput opens path for reading; "-" is standard input.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	return f, nil
}

func readMedia(cmd *cobra.Command, path string) (*m3u8.MediaPlaylist, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	p, err := m3u8.ParseMediaFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parse media playlist %s: %w", path, err)
	}
	return p, nil
}

func readMaster(cmd *cobra.Command, path string) (*m3u8.MasterPlaylist, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	p, err := m3u8.ParseMasterFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parse master playlist %s: %w", path, err)
	}
	return p, nil
}

// writeMedia encodes p to standard output, or atomically replaces out.
func (a *app) writeMedia(cmd *cobra.Command, p *m3u8.MediaPlaylist, out string) error {
	if out == "" {
		return p.Encode(cmd.OutOrStdout())
	}

	pendingFile, err := renameio.NewPendingFile(out)
	if err != nil {
		return fmt.Errorf("create pending playlist file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			a.logger.Debug().Err(err).Msg("cleanup pending playlist file")
		}
	}()

	if err := p.Encode(pendingFile); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("commit playlist file: %w", err)
	}
	a.logger.Info().Str("path", out).Int("segments", len(p.Segments)).Msg("playlist written")
	return nil
}
