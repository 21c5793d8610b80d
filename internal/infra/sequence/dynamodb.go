package sequence

import (
	"context"
	"strconv"

	appconfig "marketplace-core/internal/pkg/config"
	"marketplace-core/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UpdateItemAPI is the slice of the DynamoDB client the allocator needs.
type UpdateItemAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoAllocator keeps counters in a table keyed by "name" (string). ADD on a
// missing item starts from zero, so the first value is 1.
type DynamoAllocator struct {
	client UpdateItemAPI
	table  string
}

func NewDynamoAllocator(client UpdateItemAPI, table string) *DynamoAllocator {
	return &DynamoAllocator{client: client, table: table}
}

func (a *DynamoAllocator) Next(ctx context.Context, name string) (int64, error) {
	out, err := a.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(a.table),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, errs.Wrap(err, "dynamodb update counter "+name)
	}

	attr, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errs.New("dynamodb counter " + name + " returned no numeric value")
	}
	v, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "parse dynamodb counter "+name)
	}
	return v, nil
}

// NewDynamoClient builds a client from static credentials when they are set,
// falling back to the default AWS credential chain. Endpoint targets DynamoDB Local.
func NewDynamoClient(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
