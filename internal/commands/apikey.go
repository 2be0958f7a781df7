package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"expense-api/internal/dto"
	"expense-api/internal/repositories"
	"expense-api/internal/services"
)

func newAPIKeyCommand() *cobra.Command {
	apiKeyCmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage API keys",
	}
	apiKeyCmd.AddCommand(newAPIKeyCreateCommand())
	apiKeyCmd.AddCommand(newAPIKeyListCommand())
	apiKeyCmd.AddCommand(newAPIKeyRevokeCommand())
	return apiKeyCmd
}

func newAPIKeyCreateCommand() *cobra.Command {
	var name string
	var expiresIn time.Duration

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a new API key and print it once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPIKeyCreate(cmd, name, expiresIn)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the client the key is issued to (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "lifetime of the key, e.g. 720h (0 means never)")

	return cmd
}

func newAPIKeyListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issued API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPIKeyList(cmd, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print keys as JSON")

	return cmd
}

func newAPIKeyRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <prefix>",
		Short: "Revoke an API key by its prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPIKeyRevoke(cmd, args[0])
		},
	}
}

func apiKeyService(cmd *cobra.Command) (services.APIKeyServiceInterface, func(), error) {
	cfg, db, logger, err := openDatabase(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	svc := services.NewAPIKeyService(
		repositories.NewAPIKeyRepository(db.DB),
		services.NewExpenseLogger(logger),
		&cfg.Security,
	)

	return svc, func() { _ = db.Close() }, nil
}

func runAPIKeyCreate(cmd *cobra.Command, name string, expiresIn time.Duration) error {
	svc, closeDB, err := apiKeyService(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	issued, err := svc.IssueKey(cmd.Context(), name, expiresIn)
	if err != nil {
		return fmt.Errorf("issuing api key: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:    %s\n", issued.APIKey.Name)
	fmt.Fprintf(out, "Prefix:  %s\n", issued.APIKey.Prefix)
	fmt.Fprintf(out, "Expires: %s\n", formatExpiry(issued.APIKey.ExpiresAt))
	fmt.Fprintf(out, "Key:     %s\n", issued.Key)
	fmt.Fprintln(out, "Store the key now; it cannot be shown again.")

	return nil
}

func runAPIKeyList(cmd *cobra.Command, asJSON bool) error {
	svc, closeDB, err := apiKeyService(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	keys, err := svc.ListKeys(cmd.Context())
	if err != nil {
		return err
	}

	responses := make([]dto.APIKeyResponse, 0, len(keys))
	for i := range keys {
		responses = append(responses, dto.NewAPIKeyResponse(&keys[i]))
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(responses)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tNAME\tREVOKED\tEXPIRES\tCREATED")
	for _, key := range responses {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n",
			key.Prefix, key.Name, key.Revoked, formatExpiry(key.ExpiresAt), key.CreatedAt.Format(time.RFC3339))
	}

	return w.Flush()
}

func runAPIKeyRevoke(cmd *cobra.Command, prefix string) error {
	svc, closeDB, err := apiKeyService(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := svc.RevokeKey(cmd.Context(), prefix); err != nil {
		if errors.Is(err, services.ErrAPIKeyNotFound) {
			return fmt.Errorf("no api key with prefix %q", prefix)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "revoked api key %s\n", prefix)
	return nil
}

func formatExpiry(expiresAt *time.Time) string {
	if expiresAt == nil {
		return "never"
	}
	return expiresAt.UTC().Format(time.RFC3339)
}
