package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
)

// FlexString binds a form value or any JSON scalar as its text, so
// `"50,00"`, `50` and `true` all arrive as strings for the domain to parse.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

func (f *FlexString) ptr() *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}

// bind decodes the request body (JSON or form) into dst, answering 400 on
// failure.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_request"))
		return false
	}
	return true
}

// pathID parses the :id segment, answering 400 when it is not a UUID.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_id"))
		return uuid.Nil, false
	}
	return id, true
}
