package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"transport-tycoon/internal/adapters/recorder"
	"transport-tycoon/internal/config"
	"transport-tycoon/internal/domain"
	"transport-tycoon/internal/platform/logging"
	"transport-tycoon/internal/ports"
	"transport-tycoon/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	events   bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tycoon [destinations]",
		Short: "Compute how many ticks it takes to deliver a list of cargo",
		Long: `Each character of the destinations line is one cargo unit bound for ` +
			`terminal A (via the port) or terminal B. Without an argument the line ` +
			`is read from stdin. The tick count is the only thing printed on stdout.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.events, "events", false, "write the JSON event log to stderr")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (defaults to LOG_LEVEL or warn)")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := opts.logLevel
	if level == "" {
		level = config.Get("LOG_LEVEL", "warn")
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debugw("no .env file found (using environment variables)", "err", envErr)
	}

	line, err := readLine(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	dests, err := domain.ParseDestinations(line)
	if err != nil {
		return err
	}

	codes := make([]string, 0, len(dests))
	for _, d := range dests {
		codes = append(codes, string(d))
	}

	simOpts := cfg.SimulationOptions()
	simOpts.Logger = logger

	recorders := []ports.EventRecorder{recorder.NewLogRecorder(logger)}
	if opts.events {
		recorders = append(recorders, recorder.NewJSONRecorder(cmd.ErrOrStderr()))
	}
	simOpts.Recorder = recorder.Tee(recorders...)

	ticks, err := services.Calculate(cmd.Context(), codes, simOpts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ticks)
	return err
}

func readLine(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read destinations: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
