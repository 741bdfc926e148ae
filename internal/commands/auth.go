package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to the backend",
	Long: `Authenticate against the backend and persist the session locally.

The password is read from the --password flag or, when omitted, prompted on
standard input.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Printf("Error reading password: %v\n", err)
				return
			}
			password = strings.TrimSpace(line)
		}

		sess, err := a.gateway.Login(context.Background(), args[0], password)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Logged in as %s (%s)\n", sess.Username, sess.Role)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		if err := a.gateway.Logout(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.Close()

		if !a.sess.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return
		}
		fmt.Printf("%s (%s, id %d)\n", a.sess.Username, a.sess.Role, a.sess.SubjectID)
	},
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
}
