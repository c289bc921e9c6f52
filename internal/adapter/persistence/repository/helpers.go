package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrRecordAlreadyExists = errors.New("remote record already exists")
	ErrRecordNotFound      = errors.New("remote record not found")
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// scanAll reads every item of a table, following pagination.
func scanAll(ctx context.Context, ddb DynamoAPI, table string) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: &table})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// encodeItem turns an entity into a DynamoDB item with translated column names.
func encodeItem(fields *FieldMap, v any) (map[string]types.AttributeValue, error) {
	doc, err := toDocument(v)
	if err != nil {
		return nil, err
	}
	wire, err := fields.ToWire(doc)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(wire)
}

// decodeItem is the inverse of encodeItem.
func decodeItem(fields *FieldMap, item map[string]types.AttributeValue, out any) error {
	var wire map[string]any
	if err := attributevalue.UnmarshalMap(item, &wire); err != nil {
		return err
	}
	doc, err := fields.ToDomain(wire)
	if err != nil {
		return err
	}
	return fromDocument(doc, out)
}

// conditionFailed maps a failed condition expression to sentinel.
func conditionFailed(err, sentinel error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return errors.Join(sentinel, err)
	}
	return err
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
