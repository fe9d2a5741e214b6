package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/api/middleware"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware.
// An empty customer_id means the middleware did not run; reject with 401
// before any service call.
func ctxIdentity(c echo.Context) (customerID, username string, err error) {
	customerID, _ = c.Get(middleware.CtxCustomerID).(string)
	if customerID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get(middleware.CtxUsername).(string)
	return customerID, username, nil
}

// formImage reads an optional multipart file field fully into memory. Returns
// nil when the field is absent. The buffer goes straight to the blob store;
// nothing touches local disk.
func formImage(c echo.Context, field string) (*ports.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}

	return &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
