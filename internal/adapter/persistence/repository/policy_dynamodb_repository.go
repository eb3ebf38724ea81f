package repository

import (
	"context"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoliciesTableName = "policies"
	policiesCustomerIDIndex  = "customer_id-index"
)

type policyItem struct {
	ID             string `dynamodbav:"id"`
	CustomerID     string `dynamodbav:"customer_id"`
	Type           string `dynamodbav:"type"`
	CoverageAmount string `dynamodbav:"coverage_amount"`
	Premium        string `dynamodbav:"premium"`
	StartDate      string `dynamodbav:"start_date"`
	EndDate        string `dynamodbav:"end_date"`
	RenewedFromID  string `dynamodbav:"renewed_from_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// No status attribute is stored: the policy status is derived from the date
// range on read, and rows are never updated after creation (renewal inserts
// a new row).

type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POLICIES_TABLE", defaultPoliciesTableName),
	}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	it := toPolicyItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Policy{}, err
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
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Policy, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(policiesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Policy, 0, len(out.Items))
	for _, raw := range out.Items {
		var it policyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPolicyItem(it))
	}
	return items, nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		Type:           string(p.Type),
		CoverageAmount: p.CoverageAmount.String(),
		Premium:        p.Premium.String(),
		StartDate:      p.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:        p.EndDate.UTC().Format(time.RFC3339Nano),
		RenewedFromID:  p.RenewedFromID,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Policy{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		Type:           entities.PolicyType(it.Type),
		CoverageAmount: decimalFromString(it.CoverageAmount),
		Premium:        decimalFromString(it.Premium),
		StartDate:      startDate,
		EndDate:        endDate,
		RenewedFromID:  it.RenewedFromID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
