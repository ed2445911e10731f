package helper

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/* =========================================================
   Identifier lookup

   Historical data is keyed inconsistently: some documents by the native
   ObjectID, the rest by an externally assigned string "id" (and in a few
   collections "userId" / "username" / "playerId"). A lookup therefore
   tries an ordered list of candidate fields and matches the first hit.
   A value that does not parse as an ObjectID simply skips the _id
   candidate; it is never an error.
========================================================= */

// IDFilter builds a $or filter matching id against _id (when it parses as
// an ObjectID), the "id" field, and any alternate fields in order.
func IDFilter(id string, altFields ...string) bson.M {
	id = strings.TrimSpace(id)

	or := make([]bson.M, 0, 2+len(altFields))
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		or = append(or, bson.M{"_id": oid})
	}
	or = append(or, bson.M{"id": id})
	for _, f := range altFields {
		or = append(or, bson.M{f: id})
	}

	if len(or) == 1 {
		return or[0]
	}
	return bson.M{"$or": or}
}

// NotDeleted narrows filter to documents without a soft-delete marker.
// isDeleted is absent on old documents, so match != true rather than == false.
func NotDeleted(filter bson.M) bson.M {
	filter["isDeleted"] = bson.M{"$ne": true}
	return filter
}
