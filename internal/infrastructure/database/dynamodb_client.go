package database

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	SessionIDIndex = "session_id-index"
	QuoteIDIndex   = "quote_id-index"
)

// DynamoDBConfig selects the region and, for local development, a custom
// endpoint with static credentials.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Table           string
	CreateTable     bool
}

// ConnectDynamoDB creates a DynamoDB client. Static credentials are used when
// an access key is configured; otherwise the default AWS chain applies.
func ConnectDynamoDB(ctx context.Context, c DynamoDBConfig) (*dynamodb.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
	}
	if c.AccessKeyID != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, eris.Wrap(err, "dynamodb: load aws config")
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	})

	if c.CreateTable {
		if err := EnsureQuoteTable(ctx, client, c.Table); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// EnsureQuoteTable creates the quote records table and its two indexes when
// it does not exist yet. Meant for local endpoints.
func EnsureQuoteTable(ctx context.Context, ddb *dynamodb.Client, table string) error {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return eris.Wrapf(err, "dynamodb: describe %s", table)
	}

	_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("session_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("quote_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_seq"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(SessionIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("session_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_seq"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
			{
				IndexName: aws.String(QuoteIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("quote_id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		return eris.Wrapf(err, "dynamodb: create %s", table)
	}
	zap.L().Info("dynamodb table created", zap.String("table", table))
	return nil
}
