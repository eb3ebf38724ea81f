package repository

import (
	"context"
	"errors"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimsTableName = "claims"
	claimsPolicyIDIndex    = "policy_id-index"
)

type claimItem struct {
	ID            string `dynamodbav:"id"`
	PolicyID      string `dynamodbav:"policy_id"`
	Amount        string `dynamodbav:"amount"`
	Description   string `dynamodbav:"description"`
	Status        string `dynamodbav:"status"`
	DecisionNotes string `dynamodbav:"decision_notes,omitempty"`
	DecidedAt     string `dynamodbav:"decided_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ClaimDynamoRepository persists Claim entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: policy_id-index (PK: policy_id)
//
// The decision write is conditional on status = pending, which is what makes
// the claim transition one-shot under concurrency: DynamoDB serializes the
// two updates and rejects the loser with a conditional check failure.

type ClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	it := toClaimItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Claim{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.Claim, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(claimsPolicyIDIndex),
		KeyConditionExpression: aws.String("policy_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: policyID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Claim, 0, len(out.Items))
	for _, raw := range out.Items {
		var it claimItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromClaimItem(it))
	}
	return items, nil
}

// UpdateDecisionIfPending commits the claim decision under a status = pending
// condition. A conditional check failure (claim missing or already decided)
// returns a zero-value Claim and no error.
func (r *ClaimDynamoRepository) UpdateDecisionIfPending(ctx context.Context, id string, status entities.ClaimStatus, notes string) (entities.Claim, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #decision_notes = :decision_notes, #decided_at = :decided_at, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":        &types.AttributeValueMemberS{Value: string(entities.ClaimStatusPending)},
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":decision_notes": &types.AttributeValueMemberS{Value: notes},
			":decided_at":     &types.AttributeValueMemberS{Value: now},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#decision_notes": "decision_notes",
			"#decided_at":     "decided_at",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func toClaimItem(c entities.Claim) claimItem {
	decidedAt := ""
	if c.DecidedAt != nil {
		decidedAt = c.DecidedAt.UTC().Format(time.RFC3339Nano)
	}
	return claimItem{
		ID:            c.ID,
		PolicyID:      c.PolicyID,
		Amount:        c.Amount.String(),
		Description:   c.Description,
		Status:        string(c.Status),
		DecisionNotes: c.DecisionNotes,
		DecidedAt:     decidedAt,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClaimItem(it claimItem) entities.Claim {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var decidedAt *time.Time
	if it.DecidedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.DecidedAt); err == nil {
			decidedAt = &t
		}
	}
	return entities.Claim{
		ID:            it.ID,
		PolicyID:      it.PolicyID,
		Amount:        decimalFromString(it.Amount),
		Description:   it.Description,
		Status:        entities.ClaimStatus(it.Status),
		DecisionNotes: it.DecisionNotes,
		DecidedAt:     decidedAt,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
