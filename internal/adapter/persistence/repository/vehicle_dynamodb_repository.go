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

const (
	defaultVehiclesTableName = "vehicles"
	vehiclesCustomerIDIndex  = "customer_id-index"
)

type vehicleItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Plate      string `dynamodbav:"plate"`
	Renavam    string `dynamodbav:"renavam,omitempty"`
	Make       string `dynamodbav:"make,omitempty"`
	Model      string `dynamodbav:"model,omitempty"`
	Year       int    `dynamodbav:"year,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	vehicles := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, fromVehicleItem(it))
	}
	return vehicles, nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Renavam:    v.Renavam,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Vehicle{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Plate:      it.Plate,
		Renavam:    it.Renavam,
		Make:       it.Make,
		Model:      it.Model,
		Year:       it.Year,
		CreatedAt:  createdAt,
	}
}
