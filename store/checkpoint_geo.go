package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guardhq/patrol-api/schema"
)

// CheckpointGeo - spatial index over registered checkpoints
type CheckpointGeo interface {
	UpsertCheckpointLocation(code string, siteID uint, cords schema.Location) error
	NearestCheckpoints(distance int, cords schema.Location) ([]string, error)
}

// UpsertCheckpointLocation mirrors a checkpoint's registered coordinates into
// the geo collection keyed by its code.
func (m *mongoDB) UpsertCheckpointLocation(code string, siteID uint, cords schema.Location) error {
	c := m.client.Database(m.database).Collection(schema.CheckpointCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"code": code}
	update := bson.M{
		"$set": bson.M{
			"site_id": siteID,
			"location": schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{cords.Longitude, cords.Latitude},
			},
		},
	}

	if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"code":   code,
			"error":  err,
		}).Error("upsert checkpoint location")
		return err
	}

	return nil
}

// NearestCheckpoints returns codes of checkpoints within distance meters of
// a coordinate, closest first.
func (m *mongoDB) NearestCheckpoints(distance int, cords schema.Location) ([]string, error) {
	query := distanceQuery(distance, cords)
	c := m.client.Database(m.database).Collection(schema.CheckpointCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query checkpoint nearest distance with error: %s", err)
		return []string{}, fmt.Errorf("checkpoint nearest distance query with error: %s", err)
	}

	codes := make([]string, 0)
	var record schema.CheckpointGeo

	for cur.Next(ctx) {
		err = cur.Decode(&record)
		if nil != err {
			log.WithField("prefix", mongoLogPrefix).Infof("query nearest distance with error: %s", err)
			return []string{}, fmt.Errorf("nearest distance query decode record with error: %s", err)
		}
		codes = append(codes, record.Code)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("checkpoint nearest distance query gets %d records near long:%v lat:%v",
		len(codes), cords.Longitude, cords.Latitude)

	return codes, nil
}

func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}}
}
