package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	anticaptcha "github.com/anatolykoptev/go-anticaptcha"
)

func balanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetBalance(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

// readTask loads a task document such as {"type":"TurnstileTaskProxyless",...}.
func readTask(path string) (anticaptcha.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task: %w", err)
	}
	return anticaptcha.DecodeTask(data)
}

func solveCmd(a *app) *cobra.Command {
	var taskFile string
	cmd := &cobra.Command{
		Use:   "solve --task <file.json>",
		Short: "Create a task and wait for its solution.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := readTask(taskFile)
			if err != nil {
				return err
			}
			var res *anticaptcha.SolveResult
			if a.indicators != nil {
				res, err = a.indicators.Solve(cmd.Context(), a.client, task)
			} else {
				res, err = a.client.Solve(cmd.Context(), task)
			}
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			return res.Err()
		},
	}
	cmd.Flags().StringVar(&taskFile, "task", "", "task JSON file")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func createCmd(a *app) *cobra.Command {
	var taskFile string
	cmd := &cobra.Command{
		Use:   "create --task <file.json>",
		Short: "Create a task without waiting for it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := readTask(taskFile)
			if err != nil {
				return err
			}
			res, err := a.client.CreateTask(cmd.Context(), task)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&taskFile, "task", "", "task JSON file")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func resultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "result <taskId>",
		Short: "Fetch the current state of a task.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetTaskResult(cmd.Context(), anticaptcha.TaskID(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func reportCmd(a *app) *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "report",
		Short: "Report solution quality",
	}
	reports := []struct {
		use, short string
		call       func(*anticaptcha.Client, context.Context, anticaptcha.TaskID) (*anticaptcha.ReportResponse, error)
	}{
		{"image", "Report an incorrectly solved image captcha.", (*anticaptcha.Client).ReportIncorrectImageCaptcha},
		{"recaptcha-incorrect", "Report an incorrect reCAPTCHA token.", (*anticaptcha.Client).ReportIncorrectRecaptcha},
		{"recaptcha-correct", "Report a correct reCAPTCHA token.", (*anticaptcha.Client).ReportCorrectRecaptcha},
	}
	for _, r := range reports {
		call := r.call
		subCmd.AddCommand(&cobra.Command{
			Use:   r.use + " <taskId>",
			Short: r.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := call(a.client, cmd.Context(), anticaptcha.TaskID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			},
		})
	}
	return subCmd
}

// parseValue reads a command line value as JSON, falling back to a string.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

func pushVariableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "push-variable <taskId> <name> <value>",
		Short: "Send a late variable to a running AntiGate task.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.PushAntiGateVariable(cmd.Context(),
				anticaptcha.TaskID(args[0]), args[1], parseValue(args[2]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func queueStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "queue-stats <queueId> [templateName]",
		Short: "Show the load of a worker queue.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			queueID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("queueId must be an integer: %w", err)
			}
			var template string
			if len(args) == 2 {
				template = args[1]
			}
			res, err := a.client.GetQueueStats(cmd.Context(), queueID, template)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func spendingStatsCmd(a *app) *cobra.Command {
	var (
		date  int64
		q     anticaptcha.SpendingStatsQuery
		appID int
	)
	cmd := &cobra.Command{
		Use:   "spending-stats",
		Short: "Show spending for a 24 hour window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("date") {
				q.Date = &date
			}
			q.SoftID = appID
			res, err := a.client.GetSpendingStats(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Int64Var(&date, "date", 0, "unix timestamp of the window start hour")
	cmd.Flags().StringVar(&q.Queue, "queue", "", "queue name filter")
	cmd.Flags().IntVar(&appID, "app", 0, "application id filter")
	cmd.Flags().StringVar(&q.IP, "ip", "", "client IP filter")
	return cmd
}

func appStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "app-stats <softId> [errors|views|downloads|users|money]",
		Short: "Show statistics of a registered application.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			softID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("softId must be an integer: %w", err)
			}
			var mode anticaptcha.AppStatsMode
			if len(args) == 2 {
				mode = anticaptcha.AppStatsMode(args[1])
			}
			res, err := a.client.GetAppStats(cmd.Context(), softID, mode)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

// parseExtras turns key=value arguments into a payload map.
func parseExtras(args []string) (map[string]any, error) {
	extra := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		extra[k] = parseValue(v)
	}
	return extra, nil
}

func testCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test [key=value...]",
		Short: "Send a test request and print the echoed payload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseExtras(args)
			if err != nil {
				return err
			}
			res, err := a.client.Test(cmd.Context(), extra)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func taskTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task-types",
		Short: "List supported task types.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range anticaptcha.TaskTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
