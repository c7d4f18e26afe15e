package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	provisioningService "github.com/allisson/iga/internal/provisioning/service"
)

// RunEncryptProvisioningToken encrypts a chat workspace token with the given
// gocloud.dev keeper and prints the base64 ciphertext to store in
// PROVISIONING_CHAT_TOKEN. When token is empty it is read from the first input line.
func RunEncryptProvisioningToken(
	ctx context.Context,
	logger *slog.Logger,
	keeperURI string,
	token string,
	io IOTuple,
) error {
	if strings.TrimSpace(keeperURI) == "" {
		return fmt.Errorf("keeper URI is required")
	}

	if token == "" {
		_, _ = fmt.Fprint(io.Writer, "Enter token: ")
		line, err := bufio.NewReader(io.Reader).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(line)
		_, _ = fmt.Fprintln(io.Writer)
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	ciphertext, err := provisioningService.EncryptToken(ctx, keeperURI, token)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, ciphertext)

	logger.Info("provisioning token encrypted", slog.String("keeper_uri", redactKeeperURI(keeperURI)))
	return nil
}

// redactKeeperURI keeps only the scheme of a keeper URI, since base64key:// URIs embed the key.
func redactKeeperURI(keeperURI string) string {
	if scheme, _, found := strings.Cut(keeperURI, "://"); found {
		return scheme + "://..."
	}
	return "..."
}
