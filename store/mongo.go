// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/danielhkuo/gameday/models"
)

// DefaultMongoDatabase is used when the URI has no database path.
const DefaultMongoDatabase = "gameday"

const votesCollection = "votes"

type voteDoc struct {
	ID      string    `bson:"_id"`
	Team    string    `bson:"team"`
	VotedAt time.Time `bson:"votedAt"`
	IPHash  *string   `bson:"ipHash,omitempty"`
}

// MongoStore keeps votes as documents in the votes collection.
type MongoStore struct {
	client *mongo.Client
	votes  *mongo.Collection
}

// OpenMongo connects to uri. The database name comes from the URI path.
func OpenMongo(ctx context.Context, uri string) (*MongoStore, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid mongo uri: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = DefaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	s := &MongoStore{client: client, votes: client.Database(dbName).Collection(votesCollection)}

	_, err = s.votes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "team", Value: 1}}},
		{Keys: bson.D{{Key: "votedAt", Value: -1}}},
	})
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create vote indexes: %w", err)
	}

	return s, nil
}

func (s *MongoStore) InsertVote(ctx context.Context, v models.Vote) error {
	_, err := s.votes.InsertOne(ctx, voteDoc{
		ID:      v.ID,
		Team:    v.Team,
		VotedAt: v.VotedAt.UTC(),
		IPHash:  v.IPHash,
	})
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (s *MongoStore) CountByTeam(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$team"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := s.votes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer cur.Close(ctx)

	var groups []struct {
		Team  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode vote counts: %w", err)
	}

	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Team] = g.Count
	}
	return counts, nil
}

func (s *MongoStore) RecentVotes(ctx context.Context, limit int) ([]models.Vote, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "votedAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.votes.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent votes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []voteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode votes: %w", err)
	}

	votes := make([]models.Vote, 0, len(docs))
	for _, d := range docs {
		votes = append(votes, models.Vote{ID: d.ID, Team: d.Team, VotedAt: d.VotedAt.UTC(), IPHash: d.IPHash})
	}
	return votes, nil
}

func (s *MongoStore) CountSince(ctx context.Context, since time.Time) (int, error) {
	n, err := s.votes.CountDocuments(ctx, bson.D{{Key: "votedAt", Value: bson.D{{Key: "$gte", Value: since.UTC()}}}})
	if err != nil {
		return 0, fmt.Errorf("failed to count recent votes: %w", err)
	}
	return int(n), nil
}

func (s *MongoStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.votes.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
