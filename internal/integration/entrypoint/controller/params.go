// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// intQuery parses an optional integer query parameter. A missing parameter
// yields nil; a non-numeric value is an error so typos fail loudly instead of
// silently widening the report window.
func intQuery(ctx *gin.Context, name string) (*int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &value, nil
}

// strQuery returns an optional string query parameter, nil when absent.
func strQuery(ctx *gin.Context, name string) *string {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}
