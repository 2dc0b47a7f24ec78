package config

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsOverlay holds the sensitive values fetched from AWS Secrets
// Manager that override file-based configuration.
type SecretsOverlay struct {
	DatabasePassword string `json:"database_password"`
}

// LoadSecretsFromAWS fetches the named secret and overlays it on the
// configuration. A blank secret name is a no-op.
func (c *Config) LoadSecretsFromAWS(ctx context.Context, secretName string) error {
	if secretName == "" {
		return nil
	}

	overlay, err := fetchSecretsFromAWS(ctx, secretName)
	if err != nil {
		return fmt.Errorf("failed to load secrets from AWS: %w", err)
	}

	if overlay.DatabasePassword != "" {
		c.Database.Password = overlay.DatabasePassword
	}

	return nil
}

func fetchSecretsFromAWS(ctx context.Context, secretName string) (*SecretsOverlay, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch secret %s: %w", secretName, err)
	}
	if result.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string payload", secretName)
	}

	overlay := &SecretsOverlay{}
	if err := json.Unmarshal([]byte(*result.SecretString), overlay); err != nil {
		return nil, fmt.Errorf("failed to parse secret %s: %w", secretName, err)
	}

	return overlay, nil
}
