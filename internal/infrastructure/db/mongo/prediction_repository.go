package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
)

const predictionCollection = "predictions"

type MongoPredictionRepository struct {
	coll *mongo.Collection
}

func NewPredictionRepository(db *mongo.Database) *MongoPredictionRepository {
	return &MongoPredictionRepository{coll: db.Collection(predictionCollection)}
}

type mongoPrediction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Input     []float64          `bson:"input_data"`
	Career    string             `bson:"prediction"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoPredictionRepository) Insert(ctx context.Context, p *domain.Prediction) (string, error) {
	doc := mongoPrediction{
		UserID:    p.UserID,
		Input:     p.Input.Vector(),
		Career:    p.Career,
		CreatedAt: p.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert prediction: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert prediction: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoPredictionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Prediction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer cursor.Close(ctx)

	var predictions []*domain.Prediction
	for cursor.Next(ctx) {
		var mp mongoPrediction
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode prediction: %w", err)
		}
		predictions = append(predictions, &domain.Prediction{
			ID:        mp.ID.Hex(),
			UserID:    mp.UserID,
			Input:     profileFromVector(mp.Input),
			Career:    mp.Career,
			CreatedAt: time.Unix(mp.CreatedAt, 0).UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return predictions, nil
}

// profileFromVector rebuilds a SkillProfile from the stored model-order
// vector. Short or oversized vectors are tolerated: missing scores stay zero.
func profileFromVector(v []float64) domain.SkillProfile {
	var p domain.SkillProfile
	fields := []*float64{
		&p.DatabaseFundamentals,
		&p.ComputerArchitecture,
		&p.DistributedComputing,
		&p.CyberSecurity,
		&p.Networking,
		&p.Development,
		&p.ProgrammingSkills,
		&p.ProjectManagement,
		&p.ComputerForensics,
		&p.TechnicalCommunication,
		&p.AIML,
		&p.SoftwareEngineering,
		&p.BusinessAnalysis,
		&p.CommunicationSkills,
		&p.DataScience,
		&p.TroubleshootingSkills,
		&p.GraphicsDesigning,
	}
	for i, f := range fields {
		if i < len(v) {
			*f = v[i]
		}
	}
	return p
}
