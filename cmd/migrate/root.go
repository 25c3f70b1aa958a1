package main

import (
	"errors"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/dsn"
	"wpcopyright/internal/app/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type repoOpener func() (*repository.Repository, error)

// openRepository подключается к postgres по переменным окружения
func openRepository() (*repository.Repository, error) {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return nil, errors.New("DSN string is empty. Check your .env file")
	}
	return repository.New(dsnStr)
}

// commandContext лениво открывает репозиторий для подкоманд
type commandContext struct {
	open        repoOpener
	catalogPath string
	repo        *repository.Repository
}

func (c *commandContext) repository() (*repository.Repository, error) {
	if c.repo != nil {
		return c.repo, nil
	}
	repo, err := c.open()
	if err != nil {
		return nil, err
	}
	c.repo = repo
	return repo, nil
}

func (c *commandContext) catalog() (*copyright.Catalog, error) {
	if c.catalogPath == "" {
		return copyright.DefaultCatalog(), nil
	}
	return copyright.LoadCatalog(c.catalogPath)
}

func newRootCommand(open repoOpener) *cobra.Command {
	ctx := &commandContext{open: open}

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Database and settings maintenance for the copyright service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newMigrateCommand(ctx).RunE(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.catalogPath, "catalog", "", "License catalog TOML file (built-in table by default)")

	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newActivateCommand(ctx))
	rootCmd.AddCommand(newUninstallCommand(ctx))
	rootCmd.AddCommand(newCreateUserCommand(ctx))
	rootCmd.AddCommand(newPostTypeCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}
