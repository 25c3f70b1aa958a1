package main

import (
	"fmt"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"
	"wpcopyright/internal/app/handler"
	"wpcopyright/internal/app/repository"
	"wpcopyright/internal/app/role"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			if err := repository.Migrate(repo.DB()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database migration completed successfully")
			return nil
		},
	}
}

func newActivateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Create default copyright settings if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			catalog, err := ctx.catalog()
			if err != nil {
				return err
			}
			created, err := copyright.Activate(cmd.Context(), repo, catalog)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Default settings created")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Settings already exist")
			}
			return nil
		},
	}
}

func newUninstallCommand(ctx *commandContext) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Delete copyright settings and widget settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("refusing to delete settings without --yes")
			}
			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			if err := copyright.Uninstall(cmd.Context(), repo); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm deletion")
	return cmd
}

func parseRole(s string) (role.Role, error) {
	for _, r := range append([]role.Role{role.Subscriber}, role.Writers()...) {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func newCreateUserCommand(ctx *commandContext) *cobra.Command {
	var (
		password string
		nickname string
		roleName string
	)
	cmd := &cobra.Command{
		Use:   "create-user <login>",
		Short: "Create a site user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userRole, err := parseRole(roleName)
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			exists, err := repo.UserExistsByLogin(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("user %s already exists", args[0])
			}
			if nickname == "" {
				nickname = args[0]
			}
			user, err := repo.CreateUser(cmd.Context(), args[0], handler.HashPassword(password), nickname, userRole)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s created (id %d, %s)\n", user.Login, user.ID, userRole)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "User password")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Display name")
	cmd.Flags().StringVar(&roleName, "role", role.Administrator.String(), "subscriber|contributor|author|editor|administrator")
	return cmd
}

func newPostTypeCommand(ctx *commandContext) *cobra.Command {
	var (
		label   string
		private bool
	)
	cmd := &cobra.Command{
		Use:   "post-type <name>",
		Short: "Register or update a content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := copyright.SanitizeKey(args[0])
			if name == "" {
				return fmt.Errorf("invalid post type %q", args[0])
			}
			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			if label == "" {
				label = name
			}
			if err := repo.SavePostType(cmd.Context(), &ds.PostType{Name: name, Label: label, Public: !private}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post type %s saved\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Human readable label")
	cmd.Flags().BoolVar(&private, "private", false, "Hide from selectors")
	return cmd
}

// check выводит записи с сохранённой и действующей лицензией
func newCheckCommand(ctx *commandContext) *cobra.Command {
	var postType string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "List posts with their copyright licenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := ctx.repository()
			if err != nil {
				return err
			}
			catalog, err := ctx.catalog()
			if err != nil {
				return err
			}
			svc := copyright.NewService(catalog, repo, "")

			posts, err := repo.ListPosts(cmd.Context(), postType)
			if err != nil {
				return err
			}
			ids := make([]uint, len(posts))
			for i, p := range posts {
				ids[i] = p.ID
			}
			overrides, err := repo.GetOverrides(cmd.Context(), ids)
			if err != nil {
				return err
			}
			effective, err := svc.Resolver.ResolveLoaded(cmd.Context(), ids, overrides)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"ID", "Type", "Title", "Override", "Effective"})
			for _, p := range posts {
				override, ok := overrides[p.ID]
				if !ok {
					override = copyright.None
				}
				tw.AppendRow(table.Row{p.ID, p.PostType, p.Title, override, catalog.Title(effective[p.ID])})
			}
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
			})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&postType, "type", "", "Only this post type")
	return cmd
}
