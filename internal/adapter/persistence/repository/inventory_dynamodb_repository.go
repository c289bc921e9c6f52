package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultInventoryTableName = "master_inventory"

var ErrNoFieldsToUpdate = errors.New("no fields to update")

// InventoryDynamoRepository persists master inventory parts in DynamoDB.
//
// Table requirements:
//   - PK: part_number (string)
type InventoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb DynamoAPI, tableName string) *InventoryDynamoRepository {
	if tableName == "" {
		tableName = DefaultInventoryTableName
	}
	return &InventoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InventoryDynamoRepository) ListAll(ctx context.Context) ([]entities.Part, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, 0, len(items))
	for _, item := range items {
		var p entities.Part
		if err := decodeItem(PartFields, item, &p); err != nil {
			return nil, fmt.Errorf("decode %s item: %w", r.tableName, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *InventoryDynamoRepository) Insert(ctx context.Context, p entities.Part) error {
	av, err := encodeItem(PartFields, p)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "part_number",
		},
	})
	if err != nil {
		return conditionFailed(err, ErrRecordAlreadyExists)
	}
	return nil
}

// UpdateFields sets only the given internal fields on an existing part.
func (r *InventoryDynamoRepository) UpdateFields(ctx context.Context, partNumber string, fields map[string]any) error {
	updateExpr, values, names, err := buildSetExpression(PartFields, fields, "partNumber")
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"part_number": &types.AttributeValueMemberS{Value: partNumber},
		},
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "part_number"}),
	})
	if err != nil {
		return conditionFailed(err, ErrRecordNotFound)
	}
	return nil
}

// buildSetExpression renders "SET #f0 = :f0, ..." with translated column names,
// in a stable key order. The key field cannot be updated.
func buildSetExpression(fm *FieldMap, fields map[string]any, keyField string) (string, map[string]types.AttributeValue, map[string]string, error) {
	if len(fields) == 0 {
		return "", nil, nil, ErrNoFieldsToUpdate
	}
	domainNames := make([]string, 0, len(fields))
	for k := range fields {
		domainNames = append(domainNames, k)
	}
	sort.Strings(domainNames)

	sets := make([]string, 0, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	names := make(map[string]string, len(fields))
	for i, domain := range domainNames {
		if domain == keyField {
			return "", nil, nil, fmt.Errorf("%s: key field %q cannot be updated", fm.name, domain)
		}
		wire, ok := fm.WireName(domain)
		if !ok {
			return "", nil, nil, fmt.Errorf("%s.%s: %w", fm.name, domain, ErrUnmappedField)
		}
		av, err := attributevalue.Marshal(fields[domain])
		if err != nil {
			return "", nil, nil, err
		}
		nameKey, valueKey := fmt.Sprintf("#f%d", i), fmt.Sprintf(":f%d", i)
		names[nameKey] = wire
		values[valueKey] = av
		sets = append(sets, nameKey+" = "+valueKey)
	}
	return "SET " + strings.Join(sets, ", "), values, names, nil
}
