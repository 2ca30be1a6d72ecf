// blogctl 部落格的維運指令：migration、清理舊文章、列出使用者
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"personal-blog/internal/database"
	"personal-blog/internal/service"
	"personal-blog/internal/store"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	newPgxPool    = database.NewPgxPool
	runMigrations = database.RunMigrations
	rollbackAll   = database.RollbackAll
	pruneOldPosts = service.PruneOldPosts
	listUsers     = store.ListUsers
	exitFunc      = os.Exit
)

type options struct {
	databaseURL string
}

func (o *options) dbURL() (string, error) {
	if o.databaseURL == "" {
		return "", fmt.Errorf("database url not set (use --database-url or DATABASE_URL)")
	}
	return o.databaseURL, nil
}

func (o *options) withDB(ctx context.Context, fn func(database.DB) error) error {
	url, err := o.dbURL()
	if err != nil {
		return err
	}
	db, err := newPgxPool(ctx, url)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()
	return fn(db)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "blogctl [command] [flags]",
		Short:         "Maintenance commands for the blog database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")

	root.AddCommand(newMigrateCmd(opts), newPruneCmd(opts), newUsersCmd(opts))
	return root
}

func newMigrateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				url, err := opts.dbURL()
				if err != nil {
					return err
				}
				if err := runMigrations(url); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration (drops all blog tables)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				url, err := opts.dbURL()
				if err != nil {
					return err
				}
				if err := rollbackAll(url); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
				return nil
			},
		},
	)
	return cmd
}

func newPruneCmd(opts *options) *cobra.Command {
	var maxPosts int
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete the oldest posts, keeping the newest --max",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxPosts < 0 {
				return fmt.Errorf("--max must not be negative")
			}
			return opts.withDB(cmd.Context(), func(db database.DB) error {
				n, err := pruneOldPosts(cmd.Context(), db, maxPosts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d posts\n", n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&maxPosts, "max", service.DefaultMaxPosts, "number of posts to keep")
	return cmd
}

func newUsersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withDB(cmd.Context(), func(db database.DB) error {
				users, err := listUsers(cmd.Context(), db)
				if err != nil {
					return err
				}
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.SetHeader([]string{"ID", "Name", "Email", "Admin"})
				for _, u := range users {
					table.Append([]string{strconv.Itoa(u.ID), u.Name, u.Email, strconv.FormatBool(u.IsAdmin)})
				}
				table.Render()
				return nil
			})
		},
	})
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
	}
}
