package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/infrastructure/database"
	"vacate_quote/internal/usecase/interfaces"
)

const defaultQuoteRecordsTableName = "quote_records"

// dynamoAPI is the part of the DynamoDB client the repository calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// QuoteRecordDynamoRepository persists QuoteRecords in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI session_id-index: session_id (hash), created_seq (range, number)
//   - GSI quote_id-index: quote_id (hash)
//
// Item attribute names are the record's JSON names, so a Patch field name is
// also the attribute it writes.
type QuoteRecordDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuoteRecordRepository = (*QuoteRecordDynamoRepository)(nil)

func NewQuoteRecordDynamoRepository(ddb dynamoAPI, tableName string) *QuoteRecordDynamoRepository {
	if tableName == "" {
		tableName = defaultQuoteRecordsTableName
	}
	return &QuoteRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func jsonTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }

func jsonTagsDecode(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

func (r *QuoteRecordDynamoRepository) Create(ctx context.Context, rec entities.QuoteRecord) (entities.QuoteRecord, error) {
	av, err := attributevalue.MarshalMapWithOptions(rec, jsonTags)
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrap(err, "dynamodb: marshal quote record")
	}
	av["created_seq"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(createdSeq(rec), 10)}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrapf(err, "dynamodb: put quote record %s", rec.ID)
	}
	return rec, nil
}

func (r *QuoteRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrapf(err, "dynamodb: get quote record %s", id)
	}
	if len(out.Item) == 0 {
		return entities.QuoteRecord{}, nil
	}
	return decodeRecord(out.Item)
}

func (r *QuoteRecordDynamoRepository) GetLatestBySessionID(ctx context.Context, sessionID string) (entities.QuoteRecord, error) {
	return r.queryOne(ctx, database.SessionIDIndex, "session_id", sessionID, false)
}

func (r *QuoteRecordDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteRecord, error) {
	return r.queryOne(ctx, database.QuoteIDIndex, "quote_id", quoteID, true)
}

func (r *QuoteRecordDynamoRepository) queryOne(ctx context.Context, index, key, value string, forward bool) (entities.QuoteRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(forward),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrapf(err, "dynamodb: query %s", index)
	}
	if len(out.Items) == 0 {
		return entities.QuoteRecord{}, nil
	}
	return decodeRecord(out.Items[0])
}

// Patch writes all fields in one UpdateItem. When that fails for any reason
// other than a missing record, each field is written on its own so one bad
// value does not lose the rest of the turn.
func (r *QuoteRecordDynamoRepository) Patch(ctx context.Context, id string, fields map[string]any) ([]string, error) {
	keys := patchKeys(fields)
	if len(keys) == 0 {
		return nil, nil
	}

	err := r.update(ctx, id, keys, fields)
	if err == nil {
		return keys, nil
	}
	if errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}
	zap.L().Warn("bulk patch failed, writing fields one by one",
		zap.String("id", id), zap.Int("fields", len(keys)), zap.Error(err))

	var written []string
	var lastErr error
	for _, k := range keys {
		if err := r.update(ctx, id, []string{k}, fields); err != nil {
			zap.L().Warn("field patch failed", zap.String("id", id), zap.String("field", k), zap.Error(err))
			lastErr = err
			continue
		}
		written = append(written, k)
	}
	if len(written) == 0 {
		return nil, lastErr
	}
	return written, nil
}

func (r *QuoteRecordDynamoRepository) update(ctx context.Context, id string, keys []string, fields map[string]any) error {
	names := map[string]string{"#id": "id"}
	values := make(map[string]types.AttributeValue, len(keys))
	sets := make([]string, 0, len(keys))

	for i, k := range keys {
		av, err := attributevalue.MarshalWithOptions(fields[k], jsonTags)
		if err != nil {
			return eris.Wrapf(err, "dynamodb: marshal %s", k)
		}
		n, v := fmt.Sprintf("#f%d", i), fmt.Sprintf(":v%d", i)
		names[n] = k
		values[v] = av
		sets = append(sets, n+" = "+v)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("dynamodb: patch %s: %w", id, ErrRecordNotFound)
		}
		return eris.Wrapf(err, "dynamodb: patch %s", id)
	}
	return nil
}

func decodeRecord(item map[string]types.AttributeValue) (entities.QuoteRecord, error) {
	var rec entities.QuoteRecord
	if err := attributevalue.UnmarshalMapWithOptions(item, &rec, jsonTagsDecode); err != nil {
		return entities.QuoteRecord{}, eris.Wrap(err, "dynamodb: unmarshal quote record")
	}
	return rec, nil
}
