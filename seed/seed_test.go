package seed

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"matha/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSeedCatalog_NonEmptyCollectionsAreLeftAlone(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second run is a no-op", func(mt *mtest.T) {
		db.SevaCollection = mt.Coll
		db.RoomCollection = mt.Coll
		// both counts come back non-zero; only the two count commands are
		// answered, so an attempted insert would error into a 500
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "mathadb.seva", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}),
			mtest.CreateCursorResponse(0, "mathadb.room", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
		rec := httptest.NewRecorder()
		SeedCatalog(rec, req, nil)

		require.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), `"ok":true`)

		for _, ev := range mt.GetAllStartedEvents() {
			assert.NotEqual(mt.T, "insert", ev.CommandName)
		}
	})
}
