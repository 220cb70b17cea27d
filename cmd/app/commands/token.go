package commands

import (
	"context"
	"fmt"
	"io"

	protectionUseCase "github.com/allisson/tokenguard/internal/protection/usecase"
)

// RunEncode protects value with the configured keys and prints the token.
func RunEncode(
	ctx context.Context,
	useCase protectionUseCase.ProtectionUseCase,
	writer io.Writer,
	value string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := useCase.EncodeString(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	if format == "json" {
		return outputJSON(writer, map[string]string{"token": token})
	}
	_, _ = fmt.Fprintln(writer, token)
	return nil
}

// RunDecode verifies token with the configured keys and prints the value it carries.
func RunDecode(
	ctx context.Context,
	useCase protectionUseCase.ProtectionUseCase,
	writer io.Writer,
	token string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	value, err := useCase.DecodeString(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}

	if format == "json" {
		return outputJSON(writer, map[string]string{"value": value})
	}
	_, _ = fmt.Fprintln(writer, value)
	return nil
}
