package main

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func init() {
	companiesCmd := &cobra.Command{Use: "companies", Short: "Company operations"}
	companiesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("%s/api/companies", apiFlag))
		},
	})
	companiesCmd.AddCommand(&cobra.Command{
		Use:   "users COMPANY_ID",
		Short: "List users of a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("%s/api/companies/%s/users", apiFlag, args[0]))
		},
	})
	rootCmd.AddCommand(companiesCmd)

	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}
	usersCmd.AddCommand(&cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user detail with assigned plays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("%s/api/users/%s", apiFlag, args[0]))
		},
	})
	rootCmd.AddCommand(usersCmd)
}

func getJSON(url string) error {
	resp, err := resty.New().R().Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, _ = fmt.Fprintln(os.Stdout, resp.String())
	return nil
}
