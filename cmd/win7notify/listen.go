package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/win7notify/internal/config"
	"github.com/jmylchreest/win7notify/internal/request"
)

var listenOpts struct {
	format string
	watch  bool
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Show notifications read from stdin",
	Long: `Read notification requests from stdin and show each as it arrives.

Requests are JSON values (one per line) or YAML documents separated by ---:

  {"summary": "Build finished", "body": "All tests passed", "timeout": "3s"}

Fields: app_name, summary, body, icon_path, timeout, silent.

The command exits once stdin is closed and every notification has closed,
or on interrupt. The config file is watched and reloaded while listening.`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().StringVarP(&listenOpts.format, "format", "f", string(request.FormatJSON),
		"Request format (json, yaml)")
	listenCmd.Flags().BoolVar(&listenOpts.watch, "watch-config", true,
		"Reload the config file when it changes")
}

func runListen(cmd *cobra.Command, args []string) error {
	dec, err := request.NewDecoder(cmd.InOrStdin(), request.Format(listenOpts.format))
	if err != nil {
		return err
	}

	if stdinIsTerminal() {
		logger.Info("reading requests from the terminal, end input with Ctrl+D")
	}

	s := newSession(cfg)

	if listenOpts.watch {
		w, err := config.NewWatcher(globalOpts.configPath, s.reload, logger)
		if err != nil {
			logger.Warn("config watching disabled", "error", err)
		} else if err := w.Start(); err != nil {
			logger.Warn("config watching disabled", "error", err)
		} else {
			defer func() { _ = w.Stop() }()
		}
	}

	go readRequests(dec, s)
	return s.run()
}

// readRequests feeds decoded requests to the session until the stream ends.
func readRequests(dec *request.Decoder, s *session) {
	defer s.finish()

	for {
		req, err := dec.Next()
		if errors.Is(err, io.EOF) {
			logger.Debug("end of input", "requests", dec.Index()-1)
			return
		}
		var reqErr *request.Error
		if errors.As(err, &reqErr) && reqErr.Err == nil {
			logger.Warn("skipping request", "error", err)
			continue
		}
		if err != nil {
			logger.Error("stopped reading requests", "error", err)
			return
		}

		n, err := req.Build(s.config.Load().Notification)
		if err != nil {
			logger.Warn("skipping request", "index", dec.Index(), "error", err)
			continue
		}
		s.submit(n, req.Silent, nil)
	}
}

// stdinIsTerminal reports whether stdin is an interactive terminal.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
