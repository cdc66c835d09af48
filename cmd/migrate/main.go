package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/aedb-backend/internal/app"
	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/db/migrations"
	"github.com/yungbote/aedb-backend/internal/platform/envutil"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

type runnerFunc func(ctx context.Context, out io.Writer, r *migrations.Runner, args []string) error

func newRootCmd() *cobra.Command {
	var dsn string
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Move the database along the schema revision history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (defaults to $DSN, then "+app.DefaultDSN+")")

	withRunner := func(fn runnerFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logMode())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			svc, err := db.NewService(log, db.Options{DSN: resolveDSN(dsn)})
			if err != nil {
				return err
			}
			defer svc.Close()

			runner, err := migrations.NewRunner(svc.DB(), log, migrations.All())
			if err != nil {
				return err
			}
			return fn(cmd.Context(), cmd.OutOrStdout(), runner, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "upgrade [target]",
			Short: "Apply revisions up to target (head, a revision id or +N)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  withRunner(upgrade),
		},
		&cobra.Command{
			Use:   "downgrade <target>",
			Short: "Revert revisions down to target (base, a revision id or -- -N)",
			Args:  cobra.ExactArgs(1),
			RunE:  withRunner(downgrade),
		},
		&cobra.Command{
			Use:   "current",
			Short: "Print the revision the database is at",
			Args:  cobra.NoArgs,
			RunE:  withRunner(current),
		},
		&cobra.Command{
			Use:   "history",
			Short: "List revisions from root to head",
			Args:  cobra.NoArgs,
			RunE:  withRunner(history),
		},
		&cobra.Command{
			Use:   "heads",
			Short: "Print the head revision",
			Args:  cobra.NoArgs,
			RunE:  withRunner(heads),
		},
	)
	return root
}

func upgrade(ctx context.Context, out io.Writer, r *migrations.Runner, args []string) error {
	target := migrations.TargetHead
	if len(args) == 1 {
		target = args[0]
	}
	if err := r.Upgrade(ctx, target); err != nil {
		return err
	}
	return current(ctx, out, r, nil)
}

func downgrade(ctx context.Context, out io.Writer, r *migrations.Runner, args []string) error {
	if err := r.Downgrade(ctx, args[0]); err != nil {
		return err
	}
	return current(ctx, out, r, nil)
}

func current(ctx context.Context, out io.Writer, r *migrations.Runner, _ []string) error {
	rev, err := r.Current(ctx)
	if err != nil {
		return err
	}
	if rev == "" {
		rev = "<base>"
	}
	_, err = fmt.Fprintln(out, rev)
	return err
}

func history(_ context.Context, out io.Writer, r *migrations.Runner, _ []string) error {
	for _, rev := range r.History() {
		if _, err := fmt.Fprintln(out, rev.String()); err != nil {
			return err
		}
	}
	return nil
}

func heads(_ context.Context, out io.Writer, r *migrations.Runner, _ []string) error {
	for _, id := range r.Heads() {
		if _, err := fmt.Fprintln(out, id+" (head)"); err != nil {
			return err
		}
	}
	return nil
}

func resolveDSN(flag string) string {
	if flag != "" {
		return flag
	}
	if v, ok := envutil.OS()("DSN"); ok && v != "" {
		return v
	}
	return app.DefaultDSN
}

func logMode() string {
	if v, ok := envutil.OS()("LOG_MODE"); ok && v != "" {
		return v
	}
	return "development"
}
