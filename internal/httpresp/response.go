package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// MutationResponse carries the written row and the listing paths the
// client should refresh.
type MutationResponse struct {
	Data        any      `json:"data"`
	Invalidated []string `json:"invalidated"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Mutation[T any](c *gin.Context, status int, res invalidation.Result[T]) {
	c.JSON(status, MutationResponse{
		Data:        res.Value,
		Invalidated: invalidation.Strings(res.Stale),
	})
}
