package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
)

func TestMutation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Mutation(c, http.StatusCreated, invalidation.Result[string]{
		Value: "ok",
		Stale: []invalidation.Key{invalidation.Clients, invalidation.Dashboard},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var body MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Data)
	assert.Equal(t, []string{"/clients", "/"}, body.Invalidated)
}

func TestList_NilIsEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List[int](c, nil)

	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}
