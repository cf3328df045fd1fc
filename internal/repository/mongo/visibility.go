package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Predicate helpers for the ownership-visibility model. Every read path
// composes its filter from these so no query can forget the soft-delete
// exclusion or the owner-or-public rule.

// notDeleted excludes soft-deleted documents.
func notDeleted() bson.M {
	return bson.M{"deletedAt": bson.M{"$exists": false}}
}

// visibleTo is the owner-or-public rule. Defaults carry isPrivate=false
// by construction, so they match for every requester including nil
// (anonymous).
func visibleTo(requester *primitive.ObjectID) bson.M {
	if requester == nil {
		return bson.M{"isPrivate": false}
	}
	return bson.M{"$or": bson.A{
		bson.M{"isPrivate": false},
		bson.M{"userId": *requester},
	}}
}

// ownedBy scopes a query to documents owned by owner, regardless of the
// privacy flag.
func ownedBy(owner primitive.ObjectID) bson.M {
	return bson.M{"userId": owner}
}

// defaultsOnly scopes a query to system resources.
func defaultsOnly() bson.M {
	return bson.M{"userId": nil}
}

// allOf combines filters into a single $and document.
func allOf(filters ...bson.M) bson.M {
	and := make(bson.A, 0, len(filters))
	for _, f := range filters {
		and = append(and, f)
	}
	return bson.M{"$and": and}
}
