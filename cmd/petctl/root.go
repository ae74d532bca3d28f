package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"pet-manager/internal/platform/httpclient"
)

type rootFlags struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "petctl",
		Short:         "petctl administra mascotas y tema contra un pet-manager corriendo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("PETMGR_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}

	cmd.PersistentFlags().StringVar(&flags.server, "server", server, "URL base del servidor")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")

	cmd.AddCommand(newPetsCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func (f *rootFlags) client() (*httpclient.Client, error) {
	return httpclient.NewWithBaseURL(f.server, f.timeout)
}
