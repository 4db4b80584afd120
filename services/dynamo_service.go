package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrItemNotFound is returned by GetItem when no row exists for the key.
var ErrItemNotFound = errors.New("item not found")

// ErrConditionalCheckFailed is returned by PutItemIfNotExists when the row
// already exists. Callers treat it as "someone else won the insert", not as
// a failure.
var ErrConditionalCheckFailed = errors.New("conditional check failed")

// DB is the storage surface the services depend on. DynamoService is the
// production implementation; tests substitute an in-memory one.
type DB interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	PutItemIfNotExists(ctx context.Context, tableName string, item interface{}, condition string) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	QueryItems(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	QueryAllItems(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error)
	QueryAllItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error)
	ScanItems(ctx context.Context, tableName string, limit int32) ([]map[string]types.AttributeValue, error)
	ScanAllItems(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error)
	UpdateItem(ctx context.Context, tableName, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)
}

type DynamoService struct {
	Client *dynamodb.Client
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// PutItem writes an item unconditionally (upsert).
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// PutItemIfNotExists writes an item guarded by a condition expression,
// typically attribute_not_exists(<partition key>). A conditional check
// failure maps to ErrConditionalCheckFailed so callers can apply their
// conflict-is-success policy with errors.Is.
func (ds *DynamoService) PutItemIfNotExists(ctx context.Context, tableName string, item interface{}, condition string) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &tableName,
		Item:                marshaledItem,
		ConditionExpression: &condition,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: table '%s'", ErrConditionalCheckFailed, tableName)
		}
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// GetItem retrieves an item from DynamoDB
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}

	if output.Item == nil {
		return nil, fmt.Errorf("%w: table '%s'", ErrItemNotFound, tableName)
	}

	return output.Item, nil
}

// QueryItems queries items from DynamoDB using a KeyConditionExpression
func (ds *DynamoService) QueryItems(
	ctx context.Context,
	tableName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &keyConditionExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		Limit:                     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query items from table '%s': %w", tableName, err)
	}

	return output.Items, nil
}

// QueryItemsWithIndex queries a GSI using a KeyConditionExpression
func (ds *DynamoService) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &tableName,
		IndexName:                 &indexName,
		KeyConditionExpression:    &keyConditionExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		Limit:                     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query index '%s' on table '%s': %w", indexName, tableName, err)
	}

	return output.Items, nil
}

// QueryAllItems queries every matching item, following LastEvaluatedKey
// across pages until the result set is exhausted. Correctness-sensitive
// reads (the decided-set exclusion) must use this rather than a single
// capped page.
func (ds *DynamoService) QueryAllItems(
	ctx context.Context,
	tableName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 &tableName,
			KeyConditionExpression:    &keyConditionExpression,
			ExpressionAttributeValues: expressionAttributeValues,
			ExpressionAttributeNames:  expressionAttributeNames,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query items from table '%s': %w", tableName, err)
		}
		items = append(items, output.Items...)
		if len(output.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// QueryAllItemsWithIndex is QueryAllItems against a GSI.
func (ds *DynamoService) QueryAllItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 &tableName,
			IndexName:                 &indexName,
			KeyConditionExpression:    &keyConditionExpression,
			ExpressionAttributeValues: expressionAttributeValues,
			ExpressionAttributeNames:  expressionAttributeNames,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query index '%s' on table '%s': %w", indexName, tableName, err)
		}
		items = append(items, output.Items...)
		if len(output.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// ScanItems scans a table up to limit items
func (ds *DynamoService) ScanItems(ctx context.Context, tableName string, limit int32) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &tableName,
		Limit:     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}

	return output.Items, nil
}

// ScanAllItems scans the whole table, following LastEvaluatedKey across
// pages until exhausted.
func (ds *DynamoService) ScanAllItems(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		output, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
		}
		items = append(items, output.Items...)
		if len(output.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

// UpdateItem applies an update expression to an existing item
func (ds *DynamoService) UpdateItem(
	ctx context.Context,
	tableName string,
	updateExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, errors.New("update failed: key cannot be empty")
	}
	if updateExpression == "" {
		return nil, errors.New("update failed: updateExpression cannot be empty")
	}

	var expAttrValues map[string]types.AttributeValue
	if len(expressionAttributeValues) > 0 {
		expAttrValues = expressionAttributeValues
	}

	output, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &tableName,
		Key:                       key,
		UpdateExpression:          &updateExpression,
		ExpressionAttributeValues: expAttrValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update item in table '%s': %w", tableName, err)
	}

	return output.Attributes, nil
}
