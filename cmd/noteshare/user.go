package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)
	UserCommand.AddCommand(&TokenCommand)
	RootCmd.AddCommand(&UserCommand)
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "Print a user by id",
	Long:  "Print a user by id",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user wants 1 argument: the id of the user")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting user id: ", err)
		}

		user, err := userService.Get(id)
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}

		data, err := json.Marshal(user)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(string(data))
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "Print all the users",
	Long:  "Print all the users",
	Run: func(cmd *cobra.Command, args []string) {
		users, err := userService.List()
		if err != nil {
			logger.Fatal("error listing users:", err)
		}

		for _, user := range users {
			data, err := json.Marshal(user)
			if err != nil {
				logger.Fatal(err)
			}
			logger.Print(string(data))
		}
	},
}

var TokenCommand = cobra.Command{
	Use:   "token",
	Short: "Print a token for a user",
	Long:  "Print a token for a user",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user token wants 1 argument: the id of the user")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("error converting user id: ", err)
		}

		user, err := userService.Get(id)
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}

		token, err := tokenEncoder.Encode(user.ID, user.Username)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Print(token)
	},
}
