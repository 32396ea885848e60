package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahayakai/sahayak/internal/credential"
	"github.com/sahayakai/sahayak/internal/identity"
	"github.com/sahayakai/sahayak/internal/observe"
	"github.com/sahayakai/sahayak/internal/store"
)

var displayName string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the signed-in user",
}

var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Sign in and remember the session",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := getStore()
		defer s.Close()

		client := identityClient(s)
		sess, err := client.SignIn(context.Background(), args[0], args[1])
		if err != nil {
			fmt.Printf("Sign-in failed: %v\n", err)
			os.Exit(1)
		}

		saveSession(s, sess)
		fmt.Printf("Signed in as %s (%s)\n", sess.Profile.DisplayName, sess.Profile.Email)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register [email] [password]",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := getStore()
		defer s.Close()

		client := identityClient(s)
		sess, err := client.SignUp(context.Background(), args[0], args[1], displayName)
		if err != nil {
			fmt.Printf("Registration failed: %v\n", err)
			os.Exit(1)
		}

		saveSession(s, sess)
		fmt.Printf("Registered %s\n", sess.Profile.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Run: func(cmd *cobra.Command, args []string) {
		s := getStore()
		defer s.Close()

		_ = s.SetConfig("identity.token", "")
		_ = s.SetConfig("identity.profile", "")
		fmt.Println("Signed out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		s := getStore()
		defer s.Close()

		raw, err := s.GetConfig("identity.profile")
		if err != nil || raw == "" {
			fmt.Println("Not signed in.")
			return
		}

		var p identity.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			fmt.Println("Not signed in.")
			return
		}
		fmt.Printf("%s <%s> role=%s\n", p.DisplayName, p.Email, p.Role)
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [email]",
	Short: "Send a password-reset email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := getStore()
		defer s.Close()

		client := identityClient(s)
		if err := client.SendPasswordReset(context.Background(), args[0]); err != nil {
			fmt.Printf("Reset failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Password-reset email sent.")
	},
}

func identityClient(s store.Storage) *identity.Client {
	key := getSecret(s, "identity.api_key", "FIREBASE_API_KEY")
	return identity.NewClient(key, observe.New(os.Stderr, observe.Console, false))
}

func saveSession(s store.Storage, sess *identity.Session) {
	token := sess.IDToken
	if mgr, err := credential.NewManager(); err == nil {
		if encrypted, err := mgr.Encrypt(token); err == nil {
			token = encrypted
		}
	}
	_ = s.SetConfig("identity.token", token)
	if raw, err := json.Marshal(sess.Profile); err == nil {
		_ = s.SetConfig("identity.profile", string(raw))
	}
}

func init() {
	RootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(loginCmd)
	accountCmd.AddCommand(registerCmd)
	accountCmd.AddCommand(logoutCmd)
	accountCmd.AddCommand(whoamiCmd)
	accountCmd.AddCommand(resetPasswordCmd)
	registerCmd.Flags().StringVar(&displayName, "name", "", "Display name for the new account")
}
