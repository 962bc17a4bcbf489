package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/win7notify"
	"github.com/jmylchreest/win7notify/internal/request"
)

var sendOpts struct {
	app     string
	summary string
	body    string
	icon    string
	timeout string
	silent  bool
}

var sendCmd = &cobra.Command{
	Use:   "send [summary] [body]",
	Short: "Show one notification and wait for it to close",
	Long: `Show one notification and keep running until it closes, either when
its timeout expires or when its close button is clicked.

Examples:
  win7notify send "Build finished" "All 42 tests passed"
  win7notify send --summary "Backup" --timeout never --icon backup.png`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&sendOpts.app, "app", "",
		"Application name shown in the header (default: config or executable name)")
	sendCmd.Flags().StringVarP(&sendOpts.summary, "summary", "s", "",
		"Bold title line")
	sendCmd.Flags().StringVarP(&sendOpts.body, "body", "b", "",
		"Body text")
	sendCmd.Flags().StringVarP(&sendOpts.icon, "icon", "i", "",
		"Image file shown as the 16x16 header icon (png, jpeg or gif)")
	sendCmd.Flags().StringVarP(&sendOpts.timeout, "timeout", "t", "",
		"default, never, milliseconds or a duration like 3s (default: config)")
	sendCmd.Flags().BoolVar(&sendOpts.silent, "silent", false,
		"Do not play the alert sound")
}

func runSend(cmd *cobra.Command, args []string) error {
	req := request.Request{
		AppName:  sendOpts.app,
		Summary:  sendOpts.summary,
		Body:     sendOpts.body,
		IconPath: sendOpts.icon,
		Timeout:  sendOpts.timeout,
		Silent:   sendOpts.silent,
	}
	if len(args) > 0 && req.Summary == "" {
		req.Summary = args[0]
	}
	if len(args) > 1 && req.Body == "" {
		req.Body = args[1]
	}
	if req.Summary == "" && req.Body == "" {
		return fmt.Errorf("a summary or body is required")
	}

	n, err := req.Build(cfg.Notification)
	if err != nil {
		return err
	}

	timeout := cfg.Notification.Timeout
	if req.Timeout != "" {
		if timeout, err = win7notify.ParseTimeout(req.Timeout); err != nil {
			return err
		}
	}

	s := newSession(cfg)
	var showErr error
	s.submit(n, req.Silent, func(id string, err error) {
		if err != nil {
			showErr = err
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), describe(id, timeout, time.Now()))
	})
	s.finish()

	if err := s.run(); err != nil {
		return err
	}
	return showErr
}

// describe summarises a shown notification for the terminal.
func describe(id string, timeout win7notify.Timeout, now time.Time) string {
	d, expires := timeout.Duration()
	if !expires {
		return fmt.Sprintf("%s shown, stays until dismissed", id)
	}
	return fmt.Sprintf("%s shown, closes %s", id, humanize.RelTime(now.Add(d), now, "ago", "from now"))
}
