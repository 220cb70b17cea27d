package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
	protectionService "github.com/allisson/tokenguard/internal/protection/service"
)

// GenerateKeysResult is the output of the generate-keys command.
type GenerateKeysResult struct {
	ValidationAlgorithm string `json:"validation_algorithm"`
	DecryptionAlgorithm string `json:"decryption_algorithm"`
	ValidationKey       string `json:"validation_key"`
	DecryptionKey       string `json:"decryption_key"`
	KMSKeyURI           string `json:"kms_key_uri,omitempty"`
}

// RunGenerateKeys prints a fresh validation key and decryption key sized for the chosen
// algorithms. When kmsKeyURI is set both keys are sealed with the KMS keeper and the
// hex of the ciphertext is printed instead. Raw key bytes are wiped before returning.
func RunGenerateKeys(
	ctx context.Context,
	kmsService protectionService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	validationAlgorithm string,
	decryptionAlgorithm string,
	kmsKeyURI string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	validationAlg, err := protectionDomain.ParseValidationAlgorithm(validationAlgorithm)
	if err != nil {
		return fmt.Errorf("invalid validation algorithm %q: %w", validationAlgorithm, err)
	}
	decryptionAlg, err := protectionDomain.ParseDecryptionAlgorithm(decryptionAlgorithm)
	if err != nil {
		return fmt.Errorf("invalid decryption algorithm %q: %w", decryptionAlgorithm, err)
	}

	cfg := protectionDomain.ProtectorConfig{
		ValidationAlgorithm: validationAlg,
		DecryptionAlgorithm: decryptionAlg,
	}

	validationKey, err := protectionService.GenerateKey(protectionDomain.AutoValidationKeySize)
	if err != nil {
		return err
	}
	defer protectionDomain.Zero(validationKey)

	decryptionKey, err := protectionService.GenerateKey(cfg.GeneratedDecryptionKeySize())
	if err != nil {
		return err
	}
	defer protectionDomain.Zero(decryptionKey)

	validationOut, decryptionOut := validationKey, decryptionKey
	if kmsKeyURI != "" {
		if kmsService == nil {
			return fmt.Errorf("kms service is required with --kms-key-uri")
		}
		keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := keeper.Close(); closeErr != nil {
				logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
			}
		}()

		if validationOut, err = keeper.Encrypt(ctx, validationKey); err != nil {
			return fmt.Errorf("failed to seal validation key: %w", err)
		}
		if decryptionOut, err = keeper.Encrypt(ctx, decryptionKey); err != nil {
			return fmt.Errorf("failed to seal decryption key: %w", err)
		}
	}

	result := GenerateKeysResult{
		ValidationAlgorithm: string(validationAlg),
		DecryptionAlgorithm: string(decryptionAlg),
		ValidationKey:       hex.EncodeToString(validationOut),
		DecryptionKey:       hex.EncodeToString(decryptionOut),
		KMSKeyURI:           kmsKeyURI,
	}

	logger.Debug("generated protection keys",
		slog.String("validation_algorithm", result.ValidationAlgorithm),
		slog.Bool("sealed", kmsKeyURI != ""))

	if format == "json" {
		return outputJSON(writer, result)
	}

	_, _ = fmt.Fprintln(writer, "# Token protection keys")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintf(writer, "VALIDATION_ALGORITHM=%q\n", result.ValidationAlgorithm)
	_, _ = fmt.Fprintf(writer, "DECRYPTION_ALGORITHM=%q\n", result.DecryptionAlgorithm)
	_, _ = fmt.Fprintf(writer, "VALIDATION_KEY=%q\n", result.ValidationKey)
	_, _ = fmt.Fprintf(writer, "DECRYPTION_KEY=%q\n", result.DecryptionKey)
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=%q\n", kmsKeyURI)
	}
	return nil
}
