package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotDeletedExcludesStampedDocuments(t *testing.T) {
	filter := notDeleted()
	assert.Equal(t, bson.M{"deletedAt": bson.M{"$exists": false}}, filter)
}

func TestVisibleToAnonymousIsPublicOnly(t *testing.T) {
	filter := visibleTo(nil)
	assert.Equal(t, bson.M{"isPrivate": false}, filter)
}

func TestVisibleToRequesterIsOwnerOrPublic(t *testing.T) {
	requester := primitive.NewObjectID()
	filter := visibleTo(&requester)

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Contains(t, or, bson.M{"isPrivate": false})
	assert.Contains(t, or, bson.M{"userId": requester})
}

func TestDefaultsOnlyMatchesNullOwner(t *testing.T) {
	assert.Equal(t, bson.M{"userId": nil}, defaultsOnly())
}

func TestOwnedByIgnoresPrivacy(t *testing.T) {
	owner := primitive.NewObjectID()
	filter := ownedBy(owner)
	assert.Equal(t, bson.M{"userId": owner}, filter)
	assert.NotContains(t, filter, "isPrivate")
}

func TestAllOfComposesAnd(t *testing.T) {
	requester := primitive.NewObjectID()
	filter := allOf(notDeleted(), visibleTo(&requester))

	and, ok := filter["$and"].(bson.A)
	require.True(t, ok)
	require.Len(t, and, 2)
	assert.Equal(t, notDeleted(), and[0])
	assert.Equal(t, visibleTo(&requester), and[1])
}
