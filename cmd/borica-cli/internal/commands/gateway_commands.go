package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/app"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/spf13/cobra"
)

// GatewayCommandHandler encapsulates the merchant side of the gateway protocol.
type GatewayCommandHandler struct{}

// NewGatewayCommandHandler initializes a new GatewayCommandHandler.
func NewGatewayCommandHandler() *GatewayCommandHandler {
	return &GatewayCommandHandler{}
}

// BuildRequestCmd prints the signed eBorica parameter, or the full redirect URL when a gateway URL is known
func (commandHandler *GatewayCommandHandler) BuildRequestCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	request, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	service, err := newGatewayService(env)
	if err != nil {
		return err
	}

	eBorica, err := service.BuildRequestParameter(cmd.Context(), request)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	output := eBorica
	if env.cfg.Gateway.GatewayURL != "" {
		output, err = app.RedirectURL(env.cfg.Gateway.GatewayURL, eBorica)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

// ParseResponseCmd verifies an eBorica response with the gateway public key and prints its fields
func (commandHandler *GatewayCommandHandler) ParseResponseCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	eBorica, err := requiredString(cmd, "eBorica")
	if err != nil {
		return err
	}

	service, err := newGatewayService(env)
	if err != nil {
		return err
	}

	response, err := service.ParseResponse(cmd.Context(), eBorica)
	if err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return printResponse(cmd, response)
}

func newGatewayService(env *environment) (payment.GatewayService, error) {
	codec, err := env.codec()
	if err != nil {
		return nil, fmt.Errorf("failed to create message codec: %w", err)
	}

	keyStore, err := env.keyStore(env.cfg.Gateway.PrivateKeyPath, env.cfg.Gateway.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}

	return app.NewGatewayService(codec, env.signer, keyStore, nil, &env.cfg.Gateway, env.logger)
}

func requestFromFlags(cmd *cobra.Command) (*payment.RequestMessage, error) {
	flags := cmd.Flags()

	transactionType, err := flags.GetInt("transaction-type")
	if err != nil {
		return nil, fmt.Errorf("invalid transaction-type flag: %w", err)
	}
	amount, err := flags.GetInt64("amount")
	if err != nil {
		return nil, fmt.Errorf("invalid amount flag: %w", err)
	}
	orderNumber, err := flags.GetString("order-number")
	if err != nil {
		return nil, fmt.Errorf("invalid order-number flag: %w", err)
	}
	description, err := flags.GetString("description")
	if err != nil {
		return nil, fmt.Errorf("invalid description flag: %w", err)
	}
	language, err := flags.GetString("language")
	if err != nil {
		return nil, fmt.Errorf("invalid language flag: %w", err)
	}
	currency, err := flags.GetString("currency")
	if err != nil {
		return nil, fmt.Errorf("invalid currency flag: %w", err)
	}

	return &payment.RequestMessage{
		TransactionType: payment.TransactionType(transactionType),
		Amount:          amount,
		OrderNumber:     orderNumber,
		Description:     description,
		Language:        language,
		Currency:        currency,
	}, nil
}

func printResponse(cmd *cobra.Command, response *payment.ResponseMessage) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Transaction type:    %02d (%s)\n", int(response.TransactionType), response.TransactionType)
	fmt.Fprintf(&b, "Transaction time:    %s\n", response.TransactionTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Amount:              %d\n", response.Amount)
	fmt.Fprintf(&b, "Terminal ID:         %s\n", response.TerminalID)
	fmt.Fprintf(&b, "Order number:        %s\n", response.OrderNumber)
	fmt.Fprintf(&b, "Finalization code:   %s (%s)\n", response.FinalizationCode, response.FinalizationMessage)
	fmt.Fprintf(&b, "Protocol version:    %s\n", response.ProtocolVersion)

	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("transaction-type", "", int(payment.Authorization), "Two-digit transaction type")
	cmd.Flags().Int64P("amount", "", 0, "Amount in minor currency units")
	cmd.Flags().StringP("order-number", "", "", "Merchant order number (at most 15 characters)")
	cmd.Flags().StringP("description", "", "", "Order description (at most 125 characters)")
	cmd.Flags().StringP("language", "", "BG", "Payment page language (BG or EN)")
	cmd.Flags().StringP("currency", "", "BGN", "Currency code (BGN, EUR or USD)")
}

func addGatewayFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("terminal-id", "", "", "Terminal ID (overrides gateway.terminal_id)")
	cmd.Flags().StringP("private-key", "", "", "Path to the merchant RSA private key (overrides gateway.private_key_path)")
	cmd.Flags().StringP("public-key", "", "", "Path to the gateway public key or certificate (overrides gateway.public_key_path)")
	cmd.Flags().StringP("gateway-url", "", "", "Gateway URL used for redirects (overrides gateway.gateway_url)")
	cmd.Flags().StringP("timezone", "", "", "Time zone of the Date/Time field (overrides gateway.timezone)")
}

// InitGatewayCommands registers merchant-side gateway commands
func InitGatewayCommands(rootCmd *cobra.Command) error {
	handler := NewGatewayCommandHandler()

	var buildRequestCmd = &cobra.Command{
		Use:   "build-request",
		Short: "Build a signed eBorica request parameter",
		RunE:  handler.BuildRequestCmd,
	}
	addRequestFlags(buildRequestCmd)
	addGatewayFlags(buildRequestCmd)
	rootCmd.AddCommand(buildRequestCmd)

	var parseResponseCmd = &cobra.Command{
		Use:   "parse-response",
		Short: "Verify and decode an eBorica response parameter",
		RunE:  handler.ParseResponseCmd,
	}
	parseResponseCmd.Flags().StringP("eBorica", "", "", "The eBorica parameter received from the gateway")
	addGatewayFlags(parseResponseCmd)
	rootCmd.AddCommand(parseResponseCmd)

	return nil
}
