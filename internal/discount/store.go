package discount

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/orderzen/storefront/internal/awsx"
)

// listCap bounds how many code documents a full-scan listing will fetch.
const listCap = 10000

// ErrCodeUnavailable is returned when a redeemed code does not exist or has
// already been used. Callers cannot distinguish the two cases.
var ErrCodeUnavailable = errors.New("invalid or already used discount code")

// Store encapsulates operations on the discount codes table.
type Store struct {
	client    awsx.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new discount codes Store.
func NewStore(client awsx.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create persists a new code. The conditional write guards against the
// (negligible) chance of a random collision overwriting a live code.
func (s *Store) Create(ctx context.Context, dc DiscountCode) error {
	item, err := attributevalue.MarshalMap(dc)
	if err != nil {
		return fmt.Errorf("marshal discount code: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(code)"),
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// Issue generates a fresh unused code and persists it.
func (s *Store) Issue(ctx context.Context) (*DiscountCode, error) {
	code, err := NewCode()
	if err != nil {
		return nil, err
	}
	dc := DiscountCode{
		Code:       code,
		Percentage: Percentage,
		IsUsed:     false,
		CreatedAt:  s.nowFunc().UTC(),
	}
	if err := s.Create(ctx, dc); err != nil {
		return nil, err
	}
	return &dc, nil
}

// Redeem marks a code used in a single conditional update: the write only
// lands if the code exists and is still unused, so two concurrent checkouts
// can never both redeem the same code. Returns the code as stored after the
// update, or ErrCodeUnavailable when the condition fails.
func (s *Store) Redeem(ctx context.Context, code string) (*DiscountCode, error) {
	now := s.nowFunc().UTC()
	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		UpdateExpression:    awsString("SET is_used = :used, used_at = :ua"),
		ConditionExpression: awsString("attribute_exists(code) AND is_used = :unused"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used":   &types.AttributeValueMemberBOOL{Value: true},
			":unused": &types.AttributeValueMemberBOOL{Value: false},
			":ua":     &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException" {
			return nil, ErrCodeUnavailable
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	var dc DiscountCode
	if err := attributevalue.UnmarshalMap(out.Attributes, &dc); err != nil {
		return nil, fmt.Errorf("unmarshal discount code: %w", err)
	}
	return &dc, nil
}

// List returns all codes, used and unused, up to a fixed cap.
func (s *Store) List(ctx context.Context) ([]DiscountCode, error) {
	codes := []DiscountCode{}
	var startKey map[string]types.AttributeValue
	for len(codes) < listCap {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan discount codes: %w", err)
		}
		var page []DiscountCode
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal discount codes: %w", err)
		}
		codes = append(codes, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	if len(codes) > listCap {
		codes = codes[:listCap]
	}
	return codes, nil
}

func awsString(s string) *string { return &s }
