package repository

import (
	"context"
	"errors"
	"time"

	"product_catalog/internal/domain/entities"
	"product_catalog/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalQueueTableName = "approval_queue"
	approvalProductIDIndex        = "product_id-index"
	approvalRequestDateIndex      = "request_date-index"

	// Single queue partition so request_date-index can serve the whole queue
	// in request order.
	approvalQueuePartition = "OPEN"
)

type approvalItem struct {
	ApprovalID     string `dynamodbav:"approval_id"`
	ProductID      string `dynamodbav:"product_id"`
	QueuePartition string `dynamodbav:"queue_partition"`
	RequestDate    string `dynamodbav:"request_date"`
}

// ApprovalQueueDynamoRepository persists ApprovalRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: approval_id (string)
//   - GSI: product_id-index (PK: product_id)
//   - GSI: request_date-index (PK: queue_partition, SK: request_date)

type ApprovalQueueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalQueueRepository = (*ApprovalQueueDynamoRepository)(nil)

func NewApprovalQueueDynamoRepository(ddb *dynamodb.Client, tableName string) *ApprovalQueueDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("APPROVAL_QUEUE_TABLE", defaultApprovalQueueTableName)
	}
	return &ApprovalQueueDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ApprovalQueueDynamoRepository) GetByApprovalID(ctx context.Context, approvalID string) (entities.ApprovalRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"approval_id": &types.AttributeValueMemberS{Value: approvalID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApprovalRequest{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalItem(it), nil
}

func (r *ApprovalQueueDynamoRepository) GetByProductID(ctx context.Context, productID string) (entities.ApprovalRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalProductIDIndex),
		KeyConditionExpression: aws.String("#product_id = :product_id"),
		ExpressionAttributeNames: map[string]string{
			"#product_id": "product_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":product_id": &types.AttributeValueMemberS{Value: productID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.ApprovalRequest{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalItem(it), nil
}

func (r *ApprovalQueueDynamoRepository) List(ctx context.Context, pageNumber, pageSize int) ([]entities.ApprovalRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalRequestDateIndex),
		KeyConditionExpression: aws.String("#queue_partition = :queue_partition"),
		ExpressionAttributeNames: map[string]string{
			"#queue_partition": "queue_partition",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":queue_partition": &types.AttributeValueMemberS{Value: approvalQueuePartition},
		},
		// Ascending by request date: oldest requests first.
		ScanIndexForward: aws.Bool(true),
	}

	items, err := queryPage(ctx, r.ddb, input, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	reqs := make([]entities.ApprovalRequest, 0, len(items))
	for _, item := range items {
		var it approvalItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		reqs = append(reqs, fromApprovalItem(it))
	}
	return reqs, nil
}

func (r *ApprovalQueueDynamoRepository) Create(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	av, err := attributevalue.MarshalMap(toApprovalItem(req))
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#approval_id)"),
		ExpressionAttributeNames: map[string]string{
			"#approval_id": "approval_id",
		},
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	return req, nil
}

// Remove deletes the request. The second of two racing removals gets
// removed=false instead of silently succeeding twice.
func (r *ApprovalQueueDynamoRepository) Remove(ctx context.Context, approvalID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"approval_id": &types.AttributeValueMemberS{Value: approvalID},
		},
		ConditionExpression: aws.String("attribute_exists(#approval_id)"),
		ExpressionAttributeNames: map[string]string{
			"#approval_id": "approval_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toApprovalItem(req entities.ApprovalRequest) approvalItem {
	return approvalItem{
		ApprovalID:     req.ApprovalID,
		ProductID:      req.ProductID,
		QueuePartition: approvalQueuePartition,
		RequestDate:    formatTime(req.RequestDate),
	}
}

func fromApprovalItem(it approvalItem) entities.ApprovalRequest {
	requestDate, _ := time.Parse(time.RFC3339Nano, it.RequestDate)
	return entities.ApprovalRequest{
		ApprovalID:  it.ApprovalID,
		ProductID:   it.ProductID,
		RequestDate: requestDate,
	}
}
