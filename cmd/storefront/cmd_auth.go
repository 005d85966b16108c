package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authName     string
	authEmail    string
	authPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Login(cmd.Context(), authEmail, authPassword); err != nil {
			return err
		}
		fmt.Println("Signed in.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Register(cmd.Context(), authName, authEmail, authPassword); err != nil {
			return err
		}
		fmt.Println("Account created, signed in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		s.Logout(cmd.Context())
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		profile := s.Profile()
		if profile == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s <%s> (joined %s)\n", profile.Name, profile.Email, profile.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")    //nolint:errcheck
	loginCmd.MarkFlagRequired("password") //nolint:errcheck

	registerCmd.Flags().StringVar(&authName, "name", "", "display name")
	registerCmd.Flags().StringVar(&authEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	registerCmd.MarkFlagRequired("email")    //nolint:errcheck
	registerCmd.MarkFlagRequired("password") //nolint:errcheck

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
