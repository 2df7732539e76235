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

const defaultIssuingBodiesTableName = "issuing_bodies"

type issuingBodyItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Code      string `dynamodbav:"code,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// IssuingBodyDynamoRepository persists the órgão catalog.
//
// Table requirements:
//   - PK: id (string)

type IssuingBodyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIssuingBodyRepository = (*IssuingBodyDynamoRepository)(nil)

func NewIssuingBodyDynamoRepository(ddb *dynamodb.Client) *IssuingBodyDynamoRepository {
	return &IssuingBodyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ISSUING_BODIES_TABLE", defaultIssuingBodiesTableName),
	}
}

func (r *IssuingBodyDynamoRepository) Create(ctx context.Context, b entities.IssuingBody) (entities.IssuingBody, error) {
	av, err := attributevalue.MarshalMap(issuingBodyItem{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.IssuingBody{}, err
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
		return entities.IssuingBody{}, err
	}
	return b, nil
}

func (r *IssuingBodyDynamoRepository) GetByID(ctx context.Context, id string) (entities.IssuingBody, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IssuingBody{}, err
	}
	if len(out.Item) == 0 {
		return entities.IssuingBody{}, nil
	}

	var it issuingBodyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IssuingBody{}, err
	}
	return fromIssuingBodyItem(it), nil
}

func (r *IssuingBodyDynamoRepository) List(ctx context.Context) ([]entities.IssuingBody, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	bodies := make([]entities.IssuingBody, 0, len(out.Items))
	for _, raw := range out.Items {
		var it issuingBodyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bodies = append(bodies, fromIssuingBodyItem(it))
	}
	return bodies, nil
}

func fromIssuingBodyItem(it issuingBodyItem) entities.IssuingBody {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.IssuingBody{
		ID:        it.ID,
		Name:      it.Name,
		Code:      it.Code,
		CreatedAt: createdAt,
	}
}
