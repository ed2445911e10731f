package helper

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsNoDocuments reports whether err is the driver's not-found sentinel.
// Repositories surface it for targeted updates that matched nothing;
// controllers translate it to a 404.
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
