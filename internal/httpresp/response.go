package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
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

// Result writes the discriminated body with a status derived from its kind.
func Result[T any](c *gin.Context, successStatus int, res result.Result[T]) {
	if res.OK {
		c.JSON(successStatus, res)
		return
	}
	c.JSON(StatusOf(res.Kind), res)
}

func StatusOf(kind result.Kind) int {
	switch kind {
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindConflict:
		return http.StatusConflict
	case result.KindCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
