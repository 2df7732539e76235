package repository

import (
	"context"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInspectionTypesTableName = "inspection_types"

type inspectionTypeItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Category         string `dynamodbav:"category,omitempty"`
	BasePriceCents   int64  `dynamodbav:"base_price_cents"`
	MaxVarianceCents int64  `dynamodbav:"max_variance_cents"`
	OrgaoID          string `dynamodbav:"orgao_id,omitempty"`
	Active           bool   `dynamodbav:"active"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// InspectionTypeDynamoRepository persists the global inspection catalog.
//
// Table requirements:
//   - PK: id (string)

type InspectionTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInspectionTypeRepository = (*InspectionTypeDynamoRepository)(nil)

func NewInspectionTypeDynamoRepository(ddb *dynamodb.Client) *InspectionTypeDynamoRepository {
	return &InspectionTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSPECTION_TYPES_TABLE", defaultInspectionTypesTableName),
	}
}

func (r *InspectionTypeDynamoRepository) Create(ctx context.Context, e entities.InspectionType) (entities.InspectionType, error) {
	av, err := attributevalue.MarshalMap(toInspectionTypeItem(e))
	if err != nil {
		return entities.InspectionType{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InspectionType{}, err
	}
	return e, nil
}

func (r *InspectionTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.InspectionType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InspectionType{}, err
	}
	if len(out.Item) == 0 {
		return entities.InspectionType{}, nil
	}

	var it inspectionTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InspectionType{}, err
	}
	return fromInspectionTypeItem(it), nil
}

func (r *InspectionTypeDynamoRepository) List(ctx context.Context) ([]entities.InspectionType, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InspectionType, 0, len(out.Items))
	for _, raw := range out.Items {
		var it inspectionTypeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInspectionTypeItem(it))
	}
	return items, nil
}

func (r *InspectionTypeDynamoRepository) Update(ctx context.Context, e entities.InspectionType) (entities.InspectionType, error) {
	av, err := attributevalue.MarshalMap(toInspectionTypeItem(e))
	if err != nil {
		return entities.InspectionType{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InspectionType{}, err
	}
	return e, nil
}

func toInspectionTypeItem(e entities.InspectionType) inspectionTypeItem {
	return inspectionTypeItem{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		BasePriceCents:   e.BasePriceCents,
		MaxVarianceCents: e.MaxVarianceCents,
		OrgaoID:          e.OrgaoID,
		Active:           e.Active,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInspectionTypeItem(it inspectionTypeItem) entities.InspectionType {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.InspectionType{
		ID:               it.ID,
		Name:             it.Name,
		Category:         it.Category,
		BasePriceCents:   it.BasePriceCents,
		MaxVarianceCents: it.MaxVarianceCents,
		OrgaoID:          it.OrgaoID,
		Active:           it.Active,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
