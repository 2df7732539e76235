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

const defaultReportsTableName = "inspection_reports"

type inspectionReportItem struct {
	ID                 string            `dynamodbav:"id"`
	AppointmentID      string            `dynamodbav:"appointment_id"`
	OrgaoID            string            `dynamodbav:"orgao_id,omitempty"`
	ReportNumber       string            `dynamodbav:"report_number"`
	TechnicianName     string            `dynamodbav:"technician_name"`
	TechnicianRegistry string            `dynamodbav:"technician_registry,omitempty"`
	ValidUntil         string            `dynamodbav:"valid_until"`
	Photos             map[string]string `dynamodbav:"photos,omitempty"`
	PDFPath            string            `dynamodbav:"pdf_path,omitempty"`
	CreatedAt          string            `dynamodbav:"created_at"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
}

// InspectionReportDynamoRepository persists laudos in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// We purposely use the appointment id as PK (report ID) to guarantee at most
// one laudo per appointment: the conditional put on Create is the invariant.

type InspectionReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInspectionReportRepository = (*InspectionReportDynamoRepository)(nil)

func NewInspectionReportDynamoRepository(ddb *dynamodb.Client) *InspectionReportDynamoRepository {
	return &InspectionReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSPECTION_REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *InspectionReportDynamoRepository) Create(ctx context.Context, e entities.InspectionReport) (entities.InspectionReport, error) {
	av, err := attributevalue.MarshalMap(toInspectionReportItem(e))
	if err != nil {
		return entities.InspectionReport{}, err
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
		return entities.InspectionReport{}, err
	}
	return e, nil
}

func (r *InspectionReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.InspectionReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InspectionReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.InspectionReport{}, nil
	}

	var it inspectionReportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InspectionReport{}, err
	}
	return fromInspectionReportItem(it), nil
}

func (r *InspectionReportDynamoRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (entities.InspectionReport, error) {
	// Domain rule: report ID equals appointment ID. Resolve by PK directly.
	return r.GetByID(ctx, appointmentID)
}

func (r *InspectionReportDynamoRepository) Update(ctx context.Context, e entities.InspectionReport) (entities.InspectionReport, error) {
	av, err := attributevalue.MarshalMap(toInspectionReportItem(e))
	if err != nil {
		return entities.InspectionReport{}, err
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
		return entities.InspectionReport{}, err
	}
	return e, nil
}

func toInspectionReportItem(e entities.InspectionReport) inspectionReportItem {
	photos := make(map[string]string, len(e.Photos))
	for slot, path := range e.Photos {
		photos[string(slot)] = path
	}
	return inspectionReportItem{
		ID:                 e.ID,
		AppointmentID:      e.AppointmentID,
		OrgaoID:            e.OrgaoID,
		ReportNumber:       e.ReportNumber,
		TechnicianName:     e.TechnicianName,
		TechnicianRegistry: e.TechnicianRegistry,
		ValidUntil:         e.ValidUntil.UTC().Format(time.RFC3339Nano),
		Photos:             photos,
		PDFPath:            e.PDFPath,
		CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInspectionReportItem(it inspectionReportItem) entities.InspectionReport {
	photos := make(map[entities.PhotoSlot]string, len(it.Photos))
	for slot, path := range it.Photos {
		photos[entities.PhotoSlot(slot)] = path
	}
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.InspectionReport{
		ID:                 it.ID,
		AppointmentID:      it.AppointmentID,
		OrgaoID:            it.OrgaoID,
		ReportNumber:       it.ReportNumber,
		TechnicianName:     it.TechnicianName,
		TechnicianRegistry: it.TechnicianRegistry,
		ValidUntil:         validUntil,
		Photos:             photos,
		PDFPath:            it.PDFPath,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
