package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gingallery/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// fakeCollection answers CountDocuments from a canned value and records
// the filters it saw. The embedded interface panics on anything else a
// validator should never call.
type fakeCollection struct {
	database.Collection
	count    int64
	countErr error
	filters  []interface{}
}

func (f *fakeCollection) CountDocuments(_ context.Context, filter interface{}, _ ...options.Lister[options.CountOptions]) (int64, error) {
	f.filters = append(f.filters, filter)
	return f.count, f.countErr
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func chainRouter(path string, final *bool, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		*final = true
		c.Status(http.StatusOK)
	})
	router.POST(path, handlers...)
	return router
}

func TestCheckUserFreeTaken(t *testing.T) {
	users := &fakeCollection{count: 1}
	var handlerRan bool
	router := chainRouter("/auth/register", &handlerRan, CheckUserFree(users))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"alice","password":"Password1"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User Exists")
	assert.False(t, handlerRan)
	require.Len(t, users.filters, 1)
	assert.Equal(t, bson.M{"username": "alice"}, users.filters[0])
}

func TestCheckUserFreeAvailable(t *testing.T) {
	users := &fakeCollection{count: 0}
	var handlerRan bool
	router := chainRouter("/auth/register", &handlerRan, CheckUserFree(users))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"alice","password":"Password1"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

// An unreadable username is not this stage's problem; the validation
// stage reports it.
func TestCheckUserFreePassesEmptyUsername(t *testing.T) {
	users := &fakeCollection{}
	var handlerRan bool
	router := chainRouter("/auth/register", &handlerRan, CheckUserFree(users))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/register", `{}`))

	assert.True(t, handlerRan)
	assert.Empty(t, users.filters)
}

func TestClusterChecksNameCollision(t *testing.T) {
	// One fake per stage: a name collision must short-circuit before the
	// URI check ever queries.
	nameColl := &fakeCollection{count: 1}
	uriColl := &fakeCollection{count: 0}
	var handlerRan bool
	router := chainRouter("/images/clusters", &handlerRan,
		CheckClusterNameFree(nameColl), CheckClusterURIFree(uriColl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/images/clusters",
		`{"clusterName":"Greece 2021","clusterURI":"greece-2021"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cluster name already exists")
	assert.False(t, handlerRan)
	assert.Empty(t, uriColl.filters)
	require.Len(t, nameColl.filters, 1)
	assert.Equal(t, bson.M{"clusterName": "Greece 2021"}, nameColl.filters[0])
}

func TestClusterChecksURICollision(t *testing.T) {
	nameColl := &fakeCollection{count: 0}
	uriColl := &fakeCollection{count: 1}
	var handlerRan bool
	router := chainRouter("/images/clusters", &handlerRan,
		CheckClusterNameFree(nameColl), CheckClusterURIFree(uriColl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/images/clusters",
		`{"clusterName":"Greece 2021","clusterURI":"greece-2021"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cluster URI already exists")
	assert.False(t, handlerRan)
	require.Len(t, uriColl.filters, 1)
	assert.Equal(t, bson.M{"clusterURI": "greece-2021"}, uriColl.filters[0])
}

func TestClusterChecksBothFree(t *testing.T) {
	var handlerRan bool
	router := chainRouter("/images/clusters", &handlerRan,
		CheckClusterNameFree(&fakeCollection{}), CheckClusterURIFree(&fakeCollection{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/images/clusters",
		`{"clusterName":"Greece 2021","clusterURI":"greece-2021"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

// A malformed cluster id must fail the syntactic check and never reach the
// database; the nil collection here guarantees the test dies if it does.
func TestValidateClusterIDMalformed(t *testing.T) {
	var handlerRan bool
	router := chainRouter("/images/images/:clusterid", &handlerRan, ValidateClusterID(nil))

	for _, id := range []string{"not-hex", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "0123456789abcdef01234567ff"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/images/images/"+id, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Contains(t, w.Body.String(), "Invalid cluster id", id)
		assert.False(t, handlerRan, id)
	}
}

// A well-formed id for a cluster that does not exist gets the same
// response as a malformed one.
func TestValidateClusterIDUnknown(t *testing.T) {
	clusters := &fakeCollection{count: 0}
	var handlerRan bool
	router := chainRouter("/images/images/:clusterid", &handlerRan, ValidateClusterID(clusters))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/images/images/0123456789abcdef01234567", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid cluster id")
	assert.False(t, handlerRan)

	oid, err := bson.ObjectIDFromHex("0123456789abcdef01234567")
	require.NoError(t, err)
	require.Len(t, clusters.filters, 1)
	assert.Equal(t, bson.M{"_id": oid}, clusters.filters[0])
}

func TestValidateClusterIDKnown(t *testing.T) {
	clusters := &fakeCollection{count: 1}
	var handlerRan bool
	router := chainRouter("/images/images/:clusterid", &handlerRan, ValidateClusterID(clusters))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/images/images/0123456789abcdef01234567", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}
