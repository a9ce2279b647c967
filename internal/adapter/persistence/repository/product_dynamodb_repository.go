package repository

import (
	"context"
	"strconv"
	"time"

	"product_catalog/internal/domain/entities"
	"product_catalog/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	productsStatusIndex      = "status-index"

	// Open upper bounds used when a filter leaves them unset.
	openMaxPrice     = 1e18
	openMaxCreatedOn = "9999-12-31T00:00:00Z"
)

type productItem struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Status    string  `dynamodbav:"status"`
	CreatedOn string  `dynamodbav:"created_on"`
	UpdatedOn string  `dynamodbav:"updated_on"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: product_id (string)
//   - GSI: status-index (PK: status, SK: created_on)
//
// created_on is stored as RFC3339Nano in UTC so the index sort order matches
// chronological order; price is a number attribute so range filters work.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client, tableName string) *ProductDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PRODUCTS_TABLE", defaultProductsTableName)
	}
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, productID string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Save(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	// Full replace: insert if new, overwrite otherwise.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) ListByStatus(ctx context.Context, status entities.Status, pageNumber, pageSize int) ([]entities.Product, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		// Descending by creation date.
		ScanIndexForward: aws.Bool(false),
	}

	items, err := queryPage(ctx, r.ddb, input, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(items)
}

// Search lists ACTIVE products matching the filter, newest first. The date
// window rides on the index sort key; name and price are filter expressions.
func (r *ProductDynamoRepository) Search(ctx context.Context, filter entities.ProductFilter, pageNumber, pageSize int) ([]entities.Product, error) {
	maxPrice := filter.MaxPrice
	if maxPrice <= 0 {
		maxPrice = openMaxPrice
	}
	maxCreated := openMaxCreatedOn
	if !filter.MaxCreatedOn.IsZero() {
		maxCreated = formatTime(filter.MaxCreatedOn)
	}

	filterExpr := "#price BETWEEN :min_price AND :max_price"
	names := map[string]string{
		"#status":     "status",
		"#created_on": "created_on",
		"#price":      "price",
	}
	values := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: string(entities.StatusActive)},
		":min_created": &types.AttributeValueMemberS{Value: formatTime(filter.MinCreatedOn)},
		":max_created": &types.AttributeValueMemberS{Value: maxCreated},
		":min_price":   &types.AttributeValueMemberN{Value: floatToString(filter.MinPrice)},
		":max_price":   &types.AttributeValueMemberN{Value: floatToString(maxPrice)},
	}
	if filter.Name != "" {
		filterExpr += " AND contains(#name, :name)"
		names["#name"] = "name"
		values[":name"] = &types.AttributeValueMemberS{Value: filter.Name}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(productsStatusIndex),
		KeyConditionExpression:    aws.String("#status = :status AND #created_on BETWEEN :min_created AND :max_created"),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	}

	items, err := queryPage(ctx, r.ddb, input, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(items)
}

func unmarshalProducts(items []map[string]types.AttributeValue) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(items))
	for _, item := range items {
		var it productItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Status:    string(p.Status),
		CreatedOn: formatTime(p.CreatedOn),
		UpdatedOn: formatTime(p.UpdatedOn),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdOn, _ := time.Parse(time.RFC3339Nano, it.CreatedOn)
	updatedOn, _ := time.Parse(time.RFC3339Nano, it.UpdatedOn)
	return entities.Product{
		ProductID: it.ProductID,
		Name:      it.Name,
		Price:     it.Price,
		Status:    entities.Status(it.Status),
		CreatedOn: createdOn,
		UpdatedOn: updatedOn,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
