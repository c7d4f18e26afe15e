package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"gocloud.dev/secrets"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// DecryptToken returns the plaintext chat workspace token. When keeperURI is empty
// the token is returned unchanged; otherwise token holds base64 ciphertext produced
// by EncryptToken with the same keeper.
//
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func DecryptToken(ctx context.Context, keeperURI, token string) (string, error) {
	if strings.TrimSpace(keeperURI) == "" {
		return token, nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return "", fmt.Errorf("failed to decode provisioning token: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return "", fmt.Errorf("failed to open token keeper: %w", err)
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt provisioning token: %w", err)
	}

	return string(plaintext), nil
}

// EncryptToken encrypts a plaintext token with the keeper and returns it base64 encoded,
// ready to be stored in PROVISIONING_CHAT_TOKEN.
func EncryptToken(ctx context.Context, keeperURI, token string) (string, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return "", fmt.Errorf("failed to open token keeper: %w", err)
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, []byte(token))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt provisioning token: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
