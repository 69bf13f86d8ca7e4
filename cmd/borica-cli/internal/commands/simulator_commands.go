package commands

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/app"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/spf13/cobra"
)

// SimulatorCommandHandler plays the gateway's side of the protocol for local testing.
type SimulatorCommandHandler struct{}

// NewSimulatorCommandHandler initializes a new SimulatorCommandHandler.
func NewSimulatorCommandHandler() *SimulatorCommandHandler {
	return &SimulatorCommandHandler{}
}

// SimulateResponseCmd signs a response with a gateway private key and prints the eBorica parameter
func (commandHandler *SimulatorCommandHandler) SimulateResponseCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	gatewayKeyPath, err := requiredString(cmd, "gateway-private-key")
	if err != nil {
		return err
	}

	response, err := responseFromFlags(cmd, env.cfg.Gateway.TerminalID)
	if err != nil {
		return err
	}

	keyStore, err := env.keyStore(gatewayKeyPath, "")
	if err != nil {
		return err
	}
	gatewayKey, err := keyStore.PrivateKey()
	if err != nil {
		return err
	}

	simulator, err := newSimulator(env)
	if err != nil {
		return err
	}

	eBorica, err := simulator.SimulateResponse(cmd.Context(), response, gatewayKey)
	if err != nil {
		return fmt.Errorf("failed to simulate response: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), eBorica)
	return err
}

// VerifyRequestCmd checks a merchant request signature and prints the signed message
func (commandHandler *SimulatorCommandHandler) VerifyRequestCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	eBorica, err := requiredString(cmd, "eBorica")
	if err != nil {
		return err
	}
	merchantKeyPath, err := requiredString(cmd, "merchant-public-key")
	if err != nil {
		return err
	}

	keyStore, err := env.keyStore("", merchantKeyPath)
	if err != nil {
		return err
	}
	merchantKey, err := keyStore.PublicKey()
	if err != nil {
		return err
	}

	simulator, err := newSimulator(env)
	if err != nil {
		return err
	}

	plaintext, err := simulator.VerifyRequest(cmd.Context(), eBorica, merchantKey)
	if err != nil {
		return fmt.Errorf("failed to verify request: %w", err)
	}

	env.logger.Info("Request signature is valid")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), plaintext)
	return err
}

func newSimulator(env *environment) (payment.GatewaySimulator, error) {
	codec, err := env.codec()
	if err != nil {
		return nil, fmt.Errorf("failed to create message codec: %w", err)
	}
	return app.NewGatewaySimulator(codec, env.signer, env.logger)
}

func responseFromFlags(cmd *cobra.Command, defaultTerminalID string) (*payment.ResponseMessage, error) {
	flags := cmd.Flags()

	transactionType, err := flags.GetInt("transaction-type")
	if err != nil {
		return nil, fmt.Errorf("invalid transaction-type flag: %w", err)
	}
	amount, err := flags.GetInt64("amount")
	if err != nil {
		return nil, fmt.Errorf("invalid amount flag: %w", err)
	}
	terminalID, err := flags.GetString("terminal-id")
	if err != nil {
		return nil, fmt.Errorf("invalid terminal-id flag: %w", err)
	}
	if terminalID == "" {
		terminalID = defaultTerminalID
	}
	orderNumber, err := flags.GetString("order-number")
	if err != nil {
		return nil, fmt.Errorf("invalid order-number flag: %w", err)
	}
	code, err := flags.GetString("finalization-code")
	if err != nil {
		return nil, fmt.Errorf("invalid finalization-code flag: %w", err)
	}

	var transactionTime time.Time
	if value, _ := flags.GetString("time"); value != "" {
		transactionTime, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("invalid time flag: %w", err)
		}
	}

	return &payment.ResponseMessage{
		TransactionType:  payment.TransactionType(transactionType),
		TransactionTime:  transactionTime,
		Amount:           amount,
		TerminalID:       terminalID,
		OrderNumber:      orderNumber,
		FinalizationCode: code,
	}, nil
}

// InitSimulatorCommands registers gateway-side commands
func InitSimulatorCommands(rootCmd *cobra.Command) error {
	handler := NewSimulatorCommandHandler()

	var simulateResponseCmd = &cobra.Command{
		Use:   "simulate-response",
		Short: "Produce the eBorica response the gateway would send",
		RunE:  handler.SimulateResponseCmd,
	}
	simulateResponseCmd.Flags().StringP("gateway-private-key", "", "", "Path to the gateway RSA private key")
	simulateResponseCmd.Flags().IntP("transaction-type", "", int(payment.Authorization), "Two-digit transaction type")
	simulateResponseCmd.Flags().Int64P("amount", "", 0, "Amount in minor currency units")
	simulateResponseCmd.Flags().StringP("terminal-id", "", "", "Terminal ID (defaults to gateway.terminal_id)")
	simulateResponseCmd.Flags().StringP("order-number", "", "", "Merchant order number")
	simulateResponseCmd.Flags().StringP("finalization-code", "", payment.FinalizationSuccess, "Two-digit finalization code")
	simulateResponseCmd.Flags().StringP("time", "", "", "Transaction time in RFC 3339 (defaults to now)")
	simulateResponseCmd.Flags().StringP("timezone", "", "", "Time zone of the Date/Time field")
	rootCmd.AddCommand(simulateResponseCmd)

	var verifyRequestCmd = &cobra.Command{
		Use:   "verify-request",
		Short: "Verify the signature of a merchant eBorica request",
		RunE:  handler.VerifyRequestCmd,
	}
	verifyRequestCmd.Flags().StringP("eBorica", "", "", "The eBorica request parameter")
	verifyRequestCmd.Flags().StringP("merchant-public-key", "", "", "Path to the merchant public key or certificate")
	rootCmd.AddCommand(verifyRequestCmd)

	return nil
}
