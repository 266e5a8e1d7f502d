// Package awstest provides a small in-memory DynamoDB fake shared by the
// store tests. It implements awsx.DynamoDBAPI and is intentionally minimal:
// it only understands the expressions our stores issue.
package awstest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Dynamo stores items per table keyed by the table's primary key attribute.
type Dynamo struct {
	mu     sync.Mutex
	pks    map[string]string
	tables map[string]map[string]map[string]types.AttributeValue
}

// NewDynamo returns an empty fake with the given tables registered.
// Each pair is (tableName, primaryKeyAttribute).
func NewDynamo() *Dynamo {
	return &Dynamo{
		pks:    map[string]string{},
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

// AddTable registers a table with its primary key attribute name.
func (d *Dynamo) AddTable(name, pk string) *Dynamo {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pks[name] = pk
	d.tables[name] = map[string]map[string]types.AttributeValue{}
	return d
}

// Len reports the number of items in a table.
func (d *Dynamo) Len(table string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tables[table])
}

// Raw returns the stored attribute map for a key, or nil.
func (d *Dynamo) Raw(table, key string) map[string]types.AttributeValue {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tables[table][key]
}

func (d *Dynamo) pkValue(table string, attrs map[string]types.AttributeValue) (string, error) {
	pk, ok := d.pks[table]
	if !ok {
		return "", fmt.Errorf("unknown table %q", table)
	}
	v, ok := attrs[pk]
	if !ok {
		return "", fmt.Errorf("missing primary key %q for table %q", pk, table)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", errors.New("primary key must be a string attribute")
	}
	return s.Value, nil
}

func (d *Dynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	table := *params.TableName
	k, err := d.pkValue(table, params.Item)
	if err != nil {
		return nil, err
	}

	if params.ConditionExpression != nil {
		expr := *params.ConditionExpression
		if strings.HasPrefix(expr, "attribute_not_exists(") {
			if _, exists := d.tables[table][k]; exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}

	d.tables[table][k] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (d *Dynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	table := *params.TableName
	k, err := d.pkValue(table, params.Key)
	if err != nil {
		return nil, err
	}

	item, ok := d.tables[table][k]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (d *Dynamo) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	table := *params.TableName
	k, err := d.pkValue(table, params.Key)
	if err != nil {
		return nil, err
	}

	delete(d.tables[table], k)
	return &dyn.DeleteItemOutput{}, nil
}

// UpdateItem supports condition expressions of the form
// "attribute_exists(<pk>) AND <attr> = :<ref>" and update expressions of the
// form "SET a = :x, b = :y".
func (d *Dynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	table := *params.TableName
	k, err := d.pkValue(table, params.Key)
	if err != nil {
		return nil, err
	}

	item, exists := d.tables[table][k]

	if params.ConditionExpression != nil {
		for _, clause := range strings.Split(*params.ConditionExpression, " AND ") {
			clause = strings.TrimSpace(clause)
			switch {
			case strings.HasPrefix(clause, "attribute_exists("):
				if !exists {
					return nil, &types.ConditionalCheckFailedException{}
				}
			case strings.Contains(clause, " = :"):
				parts := strings.SplitN(clause, " = ", 2)
				attr, ref := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
				if !exists || !attrEqual(item[attr], params.ExpressionAttributeValues[ref]) {
					return nil, &types.ConditionalCheckFailedException{}
				}
			default:
				return nil, fmt.Errorf("unsupported condition clause %q", clause)
			}
		}
	}
	if !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}

	expr := strings.TrimPrefix(*params.UpdateExpression, "SET ")
	for _, assign := range strings.Split(expr, ",") {
		parts := strings.SplitN(assign, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("unsupported update expression %q", *params.UpdateExpression)
		}
		attr := strings.TrimSpace(parts[0])
		ref := strings.TrimSpace(parts[1])
		if name, ok := params.ExpressionAttributeNames[attr]; ok {
			attr = name
		}
		item[attr] = params.ExpressionAttributeValues[ref]
	}
	d.tables[table][k] = item

	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

// Scan returns every item in the table in one page. Select COUNT returns
// only the count, mirroring the real API.
func (d *Dynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	table := *params.TableName
	if _, ok := d.tables[table]; !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	count := int32(len(d.tables[table]))
	if params.Select == types.SelectCount {
		return &dyn.ScanOutput{Count: count}, nil
	}

	items := make([]map[string]types.AttributeValue, 0, count)
	for _, item := range d.tables[table] {
		items = append(items, item)
	}
	return &dyn.ScanOutput{Items: items, Count: count}, nil
}

func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}
