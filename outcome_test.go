package nina_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	nina "github.com/ninaapp/nina-api"
)

func TestOutcomeFactories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		out := nina.Success("payload")

		assert.True(t, out.IsSuccess)
		assert.False(t, out.Failed())
		assert.Equal(t, nina.StatusOk, out.Status)
		assert.Equal(t, "payload", out.Data)
		assert.Empty(t, out.ErrorMessage)
		assert.Empty(t, out.ValidationErrors)
	})

	t.Run("Created", func(t *testing.T) {
		out := nina.Created(42)

		assert.True(t, out.IsSuccess)
		assert.Equal(t, nina.StatusCreated, out.Status)
		assert.Equal(t, 42, out.Data)
	})

	t.Run("NoContent", func(t *testing.T) {
		out := nina.NoContent[nina.Empty]()

		assert.True(t, out.IsSuccess)
		assert.Equal(t, nina.StatusNoContent, out.Status)
		assert.Empty(t, out.ErrorMessage)
	})

	t.Run("Failure", func(t *testing.T) {
		out := nina.Failure[string]("nope", nina.StatusConflict)

		assert.False(t, out.IsSuccess)
		assert.True(t, out.Failed())
		assert.Equal(t, nina.StatusConflict, out.Status)
		assert.Equal(t, "nope", out.ErrorMessage)
		assert.Empty(t, out.Data)
		assert.Empty(t, out.ValidationErrors)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		errs := nina.ValidationErrors{"email": {"A valid email address is required."}}
		out := nina.ValidationFailure[nina.Empty](errs)

		assert.False(t, out.IsSuccess)
		assert.Equal(t, nina.StatusBadRequest, out.Status)
		assert.Equal(t, nina.MsgValidationFailed, out.ErrorMessage)
		assert.Equal(t, errs, out.ValidationErrors)
	})
}

func TestStatusHTTPMapping(t *testing.T) {
	tests := []struct {
		name   string
		status nina.Status
		want   int
	}{
		{"Ok", nina.StatusOk, http.StatusOK},
		{"Created", nina.StatusCreated, http.StatusCreated},
		{"NoContent", nina.StatusNoContent, http.StatusNoContent},
		{"BadRequest", nina.StatusBadRequest, http.StatusBadRequest},
		{"NotFound", nina.StatusNotFound, http.StatusNotFound},
		{"Conflict", nina.StatusConflict, http.StatusConflict},
		{"Unauthorized", nina.StatusUnauthorized, http.StatusUnauthorized},
		{"InternalError", nina.StatusInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.HTTPStatus())
		})
	}
}
