package repository

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// queryPage walks a query one DynamoDB page at a time until it has collected
// enough items to serve the requested 1-indexed page, then slices it out.
// DynamoDB has no offset reads, so earlier pages have to be read through.
func queryPage(ctx context.Context, ddb *dynamodb.Client, input *dynamodb.QueryInput, pageNumber, pageSize int) ([]map[string]types.AttributeValue, error) {
	wanted := pageNumber * pageSize
	items := make([]map[string]types.AttributeValue, 0, pageSize)

	var startKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = startKey
		out, err := ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(items) >= wanted || len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	offset := (pageNumber - 1) * pageSize
	if offset >= len(items) {
		return nil, nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}
