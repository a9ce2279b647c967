package repository

import (
	"context"
	"errors"

	"product_catalog/internal/domain/entities"
	"product_catalog/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WorkflowDynamoRepository executes the cross-table writes of the approval
// workflow with TransactWriteItems so product status and queue membership
// change together or not at all.

type WorkflowDynamoRepository struct {
	ddb                *dynamodb.Client
	productsTable      string
	approvalQueueTable string
}

var _ interfaces.IWorkflowRepository = (*WorkflowDynamoRepository)(nil)

func NewWorkflowDynamoRepository(ddb *dynamodb.Client, productsTable, approvalQueueTable string) *WorkflowDynamoRepository {
	if productsTable == "" {
		productsTable = getenvDefault("PRODUCTS_TABLE", defaultProductsTableName)
	}
	if approvalQueueTable == "" {
		approvalQueueTable = getenvDefault("APPROVAL_QUEUE_TABLE", defaultApprovalQueueTableName)
	}
	return &WorkflowDynamoRepository{
		ddb:                ddb,
		productsTable:      productsTable,
		approvalQueueTable: approvalQueueTable,
	}
}

func (r *WorkflowDynamoRepository) SaveProductWithApproval(ctx context.Context, p entities.Product, req entities.ApprovalRequest) (entities.Product, error) {
	productAV, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}
	approvalAV, err := attributevalue.MarshalMap(toApprovalItem(req))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.productsTable),
					Item:      productAV,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.approvalQueueTable),
					Item:                approvalAV,
					ConditionExpression: aws.String("attribute_not_exists(#approval_id)"),
					ExpressionAttributeNames: map[string]string{
						"#approval_id": "approval_id",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *WorkflowDynamoRepository) ApplyDecision(ctx context.Context, p entities.Product, approvalID string) (entities.Product, error) {
	productAV, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(r.productsTable),
					Item:      productAV,
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.approvalQueueTable),
					Key: map[string]types.AttributeValue{
						"approval_id": &types.AttributeValueMemberS{Value: approvalID},
					},
					ConditionExpression: aws.String("attribute_exists(#approval_id)"),
					ExpressionAttributeNames: map[string]string{
						"#approval_id": "approval_id",
					},
				},
			},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			// The request was already removed; the whole transaction rolled
			// back and the product was left untouched.
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func transactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
