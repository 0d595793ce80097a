// Package dynamodb implements the record store on a single DynamoDB table.
// Items carry the composite PK/SK key plus the serialized payload in a Data
// attribute; prefix scans are begins_with queries within one partition.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"ejama-backend/infrastructure/persistence"
)

// Config holds store settings.
type Config struct {
	TableName string
	// ConsistentRead enables strongly consistent reads. Read-your-writes on
	// a single key is the only consistency the modules rely on.
	ConsistentRead bool
}

// Store is the DynamoDB-backed record store.
type Store struct {
	client *awsdynamodb.Client
	config Config
	logger *zap.Logger
}

// item is the table row shape. Data holds the record payload verbatim.
type item struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Data      string `dynamodbav:"Data"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// New creates a DynamoDB store.
func New(client *awsdynamodb.Client, config Config, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		config: config,
		logger: logger,
	}
}

// Get retrieves a single record by key.
func (s *Store) Get(ctx context.Context, key persistence.Key) (*persistence.Record, error) {
	result, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName: aws.String(s.config.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: key.PartitionKey},
			"SK": &types.AttributeValueMemberS{Value: key.SortKey},
		},
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb GetItem failed: %w", err)
	}
	if result.Item == nil {
		return nil, persistence.ErrNotFound
	}

	var it item
	if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal item %s/%s: %w", key.PartitionKey, key.SortKey, err)
	}

	s.logger.Debug("retrieved record",
		zap.String("pk", key.PartitionKey),
		zap.String("sk", key.SortKey))

	return &persistence.Record{Key: key, Data: []byte(it.Data)}, nil
}

// Put stores a record. Unconditional upsert; last writer wins.
func (s *Store) Put(ctx context.Context, record persistence.Record) error {
	av, err := attributevalue.MarshalMap(item{
		PK:        record.Key.PartitionKey,
		SK:        record.Key.SortKey,
		Data:      string(record.Data),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal item %s/%s: %w", record.Key.PartitionKey, record.Key.SortKey, err)
	}

	_, err = s.client.PutItem(ctx, &awsdynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}

	s.logger.Debug("stored record",
		zap.String("pk", record.Key.PartitionKey),
		zap.String("sk", record.Key.SortKey))

	return nil
}

// QueryPrefix returns all records in the partition whose sort key begins
// with skPrefix, following pagination until exhausted.
func (s *Store) QueryPrefix(ctx context.Context, partitionKey, skPrefix string) ([]persistence.Record, error) {
	input := &awsdynamodb.QueryInput{
		TableName:              aws.String(s.config.TableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: partitionKey},
			":sk": &types.AttributeValueMemberS{Value: skPrefix},
		},
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	}
	if skPrefix == "" {
		input.KeyConditionExpression = aws.String("PK = :pk")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: partitionKey},
		}
	}

	var records []persistence.Record
	for {
		result, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("dynamodb Query failed: %w", err)
		}

		for _, raw := range result.Items {
			var it item
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				s.logger.Warn("skipping unreadable item", zap.Error(err))
				continue
			}
			records = append(records, persistence.Record{
				Key:  persistence.Key{PartitionKey: it.PK, SortKey: it.SK},
				Data: []byte(it.Data),
			})
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	s.logger.Debug("prefix query completed",
		zap.String("pk", partitionKey),
		zap.String("sk_prefix", skPrefix),
		zap.Int("count", len(records)))

	return records, nil
}
