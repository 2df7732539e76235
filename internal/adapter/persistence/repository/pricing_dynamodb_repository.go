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

const defaultPricingTableName = "inspection_type_pricing"

type pricingItem struct {
	ID               string `dynamodbav:"id"`
	TenantID         string `dynamodbav:"tenant_id"`
	InspectionTypeID string `dynamodbav:"inspection_type_id"`
	PriceCents       int64  `dynamodbav:"price_cents"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PricingDynamoRepository persists per-tenant price overrides.
//
// Table requirements:
//   - PK: id (string)
//
// We purposely use "<tenant_id>#<inspection_type_id>" as PK to guarantee at
// most one override per tenant/type pair and to resolve lookups with a single
// GetItem.

type PricingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRepository = (*PricingDynamoRepository)(nil)

func NewPricingDynamoRepository(ddb *dynamodb.Client) *PricingDynamoRepository {
	return &PricingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_TABLE", defaultPricingTableName),
	}
}

func (r *PricingDynamoRepository) Put(ctx context.Context, p entities.InspectionTypePricing) (entities.InspectionTypePricing, error) {
	av, err := attributevalue.MarshalMap(pricingItem{
		ID:               p.ID,
		TenantID:         p.TenantID,
		InspectionTypeID: p.InspectionTypeID,
		PriceCents:       p.PriceCents,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.InspectionTypePricing{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.InspectionTypePricing{}, err
	}
	return p, nil
}

func (r *PricingDynamoRepository) GetByTenantAndType(ctx context.Context, tenantID, inspectionTypeID string) (entities.InspectionTypePricing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.PricingKey(tenantID, inspectionTypeID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InspectionTypePricing{}, err
	}
	if len(out.Item) == 0 {
		return entities.InspectionTypePricing{}, nil
	}

	var it pricingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InspectionTypePricing{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.InspectionTypePricing{
		ID:               it.ID,
		TenantID:         it.TenantID,
		InspectionTypeID: it.InspectionTypeID,
		PriceCents:       it.PriceCents,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func (r *PricingDynamoRepository) DeleteByTenantAndType(ctx context.Context, tenantID, inspectionTypeID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.PricingKey(tenantID, inspectionTypeID)},
		},
	})
	return err
}
