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
	defaultAppointmentsTableName = "appointments"
	appointmentsTenantIDIndex    = "tenant_id-index"
)

type appointmentItem struct {
	ID               string `dynamodbav:"id"`
	TenantID         string `dynamodbav:"tenant_id"`
	CustomerID       string `dynamodbav:"customer_id"`
	VehicleID        string `dynamodbav:"vehicle_id"`
	InspectionTypeID string `dynamodbav:"inspection_type_id"`
	InspectionScope  string `dynamodbav:"inspection_scope,omitempty"`
	BillingCompanyID string `dynamodbav:"billing_company_id,omitempty"`
	ScheduledAt      string `dynamodbav:"scheduled_at"`
	Status           string `dynamodbav:"status"`
	Notes            string `dynamodbav:"notes,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Appointment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(appointmentsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	appointments := make([]entities.Appointment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		appointments = append(appointments, fromAppointmentItem(it))
	}
	return appointments, nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Appointment{}, err
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:               a.ID,
		TenantID:         a.TenantID,
		CustomerID:       a.CustomerID,
		VehicleID:        a.VehicleID,
		InspectionTypeID: a.InspectionTypeID,
		InspectionScope:  a.InspectionScope,
		BillingCompanyID: a.BillingCompanyID,
		ScheduledAt:      a.ScheduledAt.UTC().Format(time.RFC3339Nano),
		Status:           string(a.Status),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	scheduledAt, _ := time.Parse(time.RFC3339Nano, it.ScheduledAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Appointment{
		ID:               it.ID,
		TenantID:         it.TenantID,
		CustomerID:       it.CustomerID,
		VehicleID:        it.VehicleID,
		InspectionTypeID: it.InspectionTypeID,
		InspectionScope:  it.InspectionScope,
		BillingCompanyID: it.BillingCompanyID,
		ScheduledAt:      scheduledAt,
		Status:           entities.AppointmentStatus(it.Status),
		Notes:            it.Notes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
