package main

import (
	"github.com/spf13/cobra"

	"github.com/perillat/noteshare/auth"
	"github.com/perillat/noteshare/notes"
	"github.com/perillat/noteshare/web"
)

func init() {
	RootCmd.AddCommand(&WebCommand)
}

var WebCommand = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "Start the web server",
	Run: func(cmd *cobra.Command, args []string) {
		srv := web.NewServer(logger)

		auth.RegisterHTTPRoutes(srv, userService)
		notes.RegisterHTTPRoutes(srv, noteService, []byte(cfg.Auth.Secret))

		if err := srv.Start(cfg.Addr); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}
