package controller

import "github.com/labstack/echo/v4"

type RecommendController interface {
	// Page serves the form on GET and the ranked results on POST.
	Page(c echo.Context) error
	API(c echo.Context) error
}
