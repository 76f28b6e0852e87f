package responses

import (
	"net/http"

	"lavkabot/internal/structs"
)

var (
	Success = structs.Response{
		Status:      http.StatusOK,
		Description: "success",
	}
	BadRequest = structs.Response{
		Status:      http.StatusBadRequest,
		Description: "bad request",
	}
	NotFound = structs.Response{
		Status:      http.StatusNotFound,
		Description: "not found",
	}
	InternalErr = structs.Response{
		Status:      http.StatusInternalServerError,
		Description: "internal error",
	}
)
