package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/ports"
)

// parseProductListQuery validates the listing query contract: exactly one
// sort field with a direction (both or neither), an optional price filter
// (operator and value, both or neither), and non-negative pagination. Any
// other field or operator is a 400.
func parseProductListQuery(c echo.Context) (ports.ProductListFilter, error) {
	var filter ports.ProductListFilter

	sort := c.QueryParam("sort")
	order := c.QueryParam("order")
	if (sort == "") != (order == "") {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "sort and order must be provided together")
	}
	if sort != "" {
		if !domain.ValidSortField(sort) {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "sort must be one of: name, price")
		}
		switch order {
		case "asc":
			filter.Sort, filter.Ascending = sort, true
		case "desc":
			filter.Sort, filter.Ascending = sort, false
		default:
			return filter, echo.NewHTTPError(http.StatusBadRequest, "order must be one of: asc, desc")
		}
	}

	priceOp := c.QueryParam("price_filter_op")
	priceVal := c.QueryParam("price_filter_value")
	if (priceOp == "") != (priceVal == "") {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "price_filter_op and price_filter_value must be provided together")
	}
	if priceOp != "" {
		if !domain.ValidPriceOp(priceOp) {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "price_filter_op must be one of: gt, lt, gte, lte")
		}
		val, err := strconv.ParseFloat(priceVal, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "price_filter_value must be a number")
		}
		filter.PriceOp, filter.PriceVal = priceOp, val
	}

	var err error
	if filter.Skip, err = queryInt(c, "skip", 0); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit", 0); err != nil {
		return filter, err
	}

	return filter, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}
