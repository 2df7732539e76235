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

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID                  string `dynamodbav:"id"`
	LegalName           string `dynamodbav:"legal_name"`
	TaxID               string `dynamodbav:"tax_id"`
	Email               string `dynamodbav:"email,omitempty"`
	Phone               string `dynamodbav:"phone,omitempty"`
	Active              bool   `dynamodbav:"active"`
	PaymentSubAccountID string `dynamodbav:"payment_sub_account_id,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func (r *TenantDynamoRepository) List(ctx context.Context) ([]entities.Tenant, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	tenants := make([]entities.Tenant, 0, len(out.Items))
	for _, raw := range out.Items {
		var it tenantItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tenants = append(tenants, fromTenantItem(it))
	}
	return tenants, nil
}

func (r *TenantDynamoRepository) Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}

func toTenantItem(t entities.Tenant) tenantItem {
	return tenantItem{
		ID:                  t.ID,
		LegalName:           t.LegalName,
		TaxID:               t.TaxID,
		Email:               t.Email,
		Phone:               t.Phone,
		Active:              t.Active,
		PaymentSubAccountID: t.PaymentSubAccountID,
		CreatedAt:           t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Tenant{
		ID:                  it.ID,
		LegalName:           it.LegalName,
		TaxID:               it.TaxID,
		Email:               it.Email,
		Phone:               it.Phone,
		Active:              it.Active,
		PaymentSubAccountID: it.PaymentSubAccountID,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
