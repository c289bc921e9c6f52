package database

import (
	"context"
	"strings"

	"mecanica_oficina/internal/usecase/interfaces"
	appconfig "mecanica_oficina/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultRegion = "us-east-1"

// ConnectDynamoDB creates a DynamoDB client from the remote store settings.
//
// It returns interfaces.ErrRemoteUnconfigured when neither AWS_REGION nor
// DYNAMODB_ENDPOINT is set, or the remote store is disabled.
func ConnectDynamoDB(ctx context.Context, rc appconfig.RemoteConfig) (*dynamodb.Client, error) {
	if !rc.Configured() {
		return nil, interfaces.ErrRemoteUnconfigured
	}
	cfg, err := NewDynamoDBConfig(ctx, rc)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(rc.Endpoint)
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, rc appconfig.RemoteConfig) (aws.Config, error) {
	region := strings.TrimSpace(rc.Region)
	if region == "" {
		region = defaultRegion
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(rc.AccessKeyID, rc.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}
