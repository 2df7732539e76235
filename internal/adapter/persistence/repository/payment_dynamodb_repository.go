package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsAppointmentIDIndex = "appointment_id-index"
	paymentsStatusIndex        = "status-index"

	chargeLockPrefix = "charge-lock#"
)

type paymentItem struct {
	ID               string `dynamodbav:"id"`
	AppointmentID    string `dynamodbav:"appointment_id"`
	AmountCents      int64  `dynamodbav:"amount_cents"`
	Status           string `dynamodbav:"status"`
	ExternalChargeID string `dynamodbav:"external_charge_id"`
	SubAccountID     string `dynamodbav:"sub_account_id,omitempty"`
	Method           string `dynamodbav:"method,omitempty"`
	CheckoutRef      string `dynamodbav:"checkout_ref,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`

	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: appointment_id-index (PK: appointment_id)
//   - GSI: status-index (PK: status)
//
// The charge lock lives in the same table under a "charge-lock#" prefixed id;
// the conditional put on that item is what serializes concurrent charge
// creation for one appointment.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAppointmentIDIndex),
		KeyConditionExpression: aws.String("appointment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: appointmentID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, paidAt *time.Time, providerPayload json.RawMessage) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if paidAt != nil {
		expr += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)}
	}
	if len(providerPayload) > 0 {
		expr += ", #provider_payload_raw = :provider_payload_raw"
		names["#provider_payload_raw"] = "provider_payload_raw"
		vals[":provider_payload_raw"] = &types.AttributeValueMemberS{Value: string(providerPayload)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) AcquireChargeLock(ctx context.Context, appointmentID string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: chargeLockPrefix + appointmentID},
			"created_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrChargeLockHeld
		}
		return err
	}
	return nil
}

func (r *PaymentDynamoRepository) ReleaseChargeLock(ctx context.Context, appointmentID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: chargeLockPrefix + appointmentID},
		},
	})
	return err
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                 p.ID,
		AppointmentID:      p.AppointmentID,
		AmountCents:        p.AmountCents,
		Status:             string(p.Status),
		ExternalChargeID:   p.ExternalChargeID,
		SubAccountID:       p.SubAccountID,
		Method:             p.Method,
		CheckoutRef:        p.CheckoutRef,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Payment{
		ID:                 it.ID,
		AppointmentID:      it.AppointmentID,
		AmountCents:        it.AmountCents,
		Status:             entities.PaymentStatus(it.Status),
		ExternalChargeID:   it.ExternalChargeID,
		SubAccountID:       it.SubAccountID,
		Method:             it.Method,
		CheckoutRef:        it.CheckoutRef,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		ProviderPayloadRaw: json.RawMessage(it.ProviderPayloadRaw),
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &paidAt
		}
	}
	return p
}
