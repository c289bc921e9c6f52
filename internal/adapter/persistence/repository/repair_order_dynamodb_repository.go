package repository

import (
	"context"
	"fmt"

	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultRepairOrdersTableName = "repair_orders"

// RepairOrderDynamoRepository persists RepairOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Updates are full-record conditional puts; the engine always sends the whole RO.
type RepairOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRepairOrderRepository = (*RepairOrderDynamoRepository)(nil)

func NewRepairOrderDynamoRepository(ddb DynamoAPI, tableName string) *RepairOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultRepairOrdersTableName
	}
	return &RepairOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RepairOrderDynamoRepository) ListAll(ctx context.Context) ([]entities.RepairOrder, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.RepairOrder, 0, len(items))
	for _, item := range items {
		var o entities.RepairOrder
		if err := decodeItem(RepairOrderFields, item, &o); err != nil {
			return nil, fmt.Errorf("decode %s item: %w", r.tableName, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *RepairOrderDynamoRepository) Insert(ctx context.Context, o entities.RepairOrder) error {
	return r.put(ctx, o, "attribute_not_exists(#id)", ErrRecordAlreadyExists)
}

func (r *RepairOrderDynamoRepository) Update(ctx context.Context, o entities.RepairOrder) error {
	return r.put(ctx, o, "attribute_exists(#id)", ErrRecordNotFound)
}

func (r *RepairOrderDynamoRepository) put(ctx context.Context, o entities.RepairOrder, condition string, onConflict error) error {
	av, err := encodeItem(RepairOrderFields, o)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return conditionFailed(err, onConflict)
	}
	return nil
}
