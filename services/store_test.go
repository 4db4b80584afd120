package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/JAMAL4664jfk/studentKonnect-sub000/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func mustKey(t *testing.T, pairKey string) map[string]types.AttributeValue {
	t.Helper()
	return map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}
}

// fakeTableKeys mirrors the key schema of the real tables so the fake can
// derive an item's identity the same way DynamoDB would.
var fakeTableKeys = map[string][]string{
	models.ProfilesTable:      {"userId"},
	models.InteractionsTable:  {"actorId", "targetId"},
	models.MatchesTable:       {"pairKey"},
	models.ConversationsTable: {"pairKey"},
	models.MessagesTable:      {"conversationId", "messageId"},
}

// fakeDB is the in-memory DB used by the service tests. It honors the same
// conditional-put and not-found semantics as DynamoService, and supports
// injected failures per operation and table.
type fakeDB struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	errs   map[string]error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		tables: make(map[string]map[string]map[string]types.AttributeValue),
		errs:   make(map[string]error),
	}
}

// failWith injects an error for an operation ("put", "get", "query", "scan")
// on a table.
func (f *fakeDB) failWith(op, table string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[op+":"+table] = err
}

func (f *fakeDB) injected(op, table string) error {
	return f.errs[op+":"+table]
}

func (f *fakeDB) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}

func (f *fakeDB) itemKey(table string, item map[string]types.AttributeValue) (string, error) {
	attrs, ok := fakeTableKeys[table]
	if !ok {
		return "", fmt.Errorf("no key schema for table %q", table)
	}
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		s, ok := item[attr].(*types.AttributeValueMemberS)
		if !ok {
			return "", fmt.Errorf("missing key attribute %q for table %q", attr, table)
		}
		parts = append(parts, s.Value)
	}
	return strings.Join(parts, "|"), nil
}

func (f *fakeDB) put(table string, item interface{}, conditional bool) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("put", table); err != nil {
		return err
	}

	key, err := f.itemKey(table, marshaled)
	if err != nil {
		return err
	}
	if f.tables[table] == nil {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	if conditional {
		if _, exists := f.tables[table][key]; exists {
			return fmt.Errorf("%w: table '%s'", ErrConditionalCheckFailed, table)
		}
	}
	f.tables[table][key] = marshaled
	return nil
}

func (f *fakeDB) PutItem(ctx context.Context, tableName string, item interface{}) error {
	return f.put(tableName, item, false)
}

func (f *fakeDB) PutItemIfNotExists(ctx context.Context, tableName string, item interface{}, condition string) error {
	return f.put(tableName, item, true)
}

func (f *fakeDB) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("get", tableName); err != nil {
		return nil, err
	}

	k, err := f.itemKey(tableName, key)
	if err != nil {
		return nil, err
	}
	item, ok := f.tables[tableName][k]
	if !ok {
		return nil, fmt.Errorf("%w: table '%s'", ErrItemNotFound, tableName)
	}
	return item, nil
}

// matchCondition evaluates expressions of the shape
// "attr = :name [AND attr = :name]" against an item.
func matchCondition(item map[string]types.AttributeValue, condition string, values map[string]types.AttributeValue) bool {
	for _, clause := range strings.Split(condition, " AND ") {
		fields := strings.Fields(clause)
		if len(fields) != 3 || fields[1] != "=" {
			return false
		}
		attr, placeholder := fields[0], fields[2]
		got, ok := item[attr].(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		want, ok := values[placeholder].(*types.AttributeValueMemberS)
		if !ok || got.Value != want.Value {
			return false
		}
	}
	return true
}

func (f *fakeDB) query(tableName, condition string, values map[string]types.AttributeValue, limit int32) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("query", tableName); err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if matchCondition(item, condition, values) {
			items = append(items, item)
		}
		// limit <= 0 means unbounded, mirroring a LastEvaluatedKey loop
		// that drains every page.
		if limit > 0 && int32(len(items)) >= limit {
			break
		}
	}
	return items, nil
}

func (f *fakeDB) QueryItems(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyConditionExpression, expressionAttributeValues, limit)
}

func (f *fakeDB) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyConditionExpression, expressionAttributeValues, limit)
}

func (f *fakeDB) QueryAllItems(ctx context.Context, tableName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyConditionExpression, expressionAttributeValues, 0)
}

func (f *fakeDB) QueryAllItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyConditionExpression, expressionAttributeValues, 0)
}

func (f *fakeDB) scan(tableName string, limit int32) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("scan", tableName); err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		items = append(items, item)
		if limit > 0 && int32(len(items)) >= limit {
			break
		}
	}
	return items, nil
}

func (f *fakeDB) ScanItems(ctx context.Context, tableName string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.scan(tableName, limit)
}

func (f *fakeDB) ScanAllItems(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error) {
	return f.scan(tableName, 0)
}

func (f *fakeDB) UpdateItem(ctx context.Context, tableName, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k, err := f.itemKey(tableName, key)
	if err != nil {
		return nil, err
	}
	item, ok := f.tables[tableName][k]
	if !ok {
		return nil, fmt.Errorf("%w: table '%s'", ErrItemNotFound, tableName)
	}

	// Supports the one shape the services use: "SET attr = :placeholder".
	fields := strings.Fields(updateExpression)
	if len(fields) == 4 && fields[0] == "SET" && fields[2] == "=" {
		item[fields[1]] = expressionAttributeValues[fields[3]]
	}
	return item, nil
}
