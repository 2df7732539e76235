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

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	TaxID     string `dynamodbav:"tax_id,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(customerItem{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	customers := make([]entities.Customer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it customerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		customers = append(customers, fromCustomerItem(it))
	}
	return customers, nil
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		TaxID:     it.TaxID,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedAt: createdAt,
	}
}
