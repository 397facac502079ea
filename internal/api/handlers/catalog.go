package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	service "github.com/aaravmahajanofficial/saonamtg-web/internal/services"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const (
	MaxPerPage      = 100
	MaxRelatedLimit = 20
)

type CatalogHandler struct {
	commerceService service.CommerceService
	contentService  service.ContentService
	validator       *validator.Validate
}

func NewCatalogHandler(commerceService service.CommerceService, contentService service.ContentService) *CatalogHandler {
	return &CatalogHandler{commerceService: commerceService, contentService: contentService, validator: validator.New()}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Lists catalog products, served from the in-memory cache when possible.
//	@Tags			Products
//	@Produce		json
//	@Param			page		query		int		false	"Page number (default: 1)"			minimum(1)
//	@Param			per_page	query		int		false	"Items per page (default: 12, max: 100)"	minimum(1)	maximum(100)
//	@Param			category	query		int		false	"Category ID"
//	@Param			search		query		string	false	"Search term"
//	@Param			orderby		query		string	false	"Sort field"
//	@Param			order		query		string	false	"Sort direction"	Enums(asc, desc)
//	@Param			featured	query		bool	false	"Only featured products"
//	@Param			on_sale		query		bool	false	"Only products on sale"
//	@Success		200			{object}	models.ProductList
//	@Failure		400			{object}	response.ErrorResponse	"Invalid query parameters"
//	@Router			/api/v1/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		q := r.URL.Query()
		query := models.ProductQuery{
			Page:     utils.QueryIntPtr(r, "page"),
			PerPage:  utils.QueryIntPtr(r, "per_page"),
			Category: utils.QueryInt64Ptr(r, "category"),
			Search:   strings.TrimSpace(q.Get("search")),
			OrderBy:  q.Get("orderby"),
			Order:    q.Get("order"),
			Featured: utils.QueryBoolPtr(r, "featured"),
			OnSale:   utils.QueryBoolPtr(r, "on_sale"),
		}

		if query.PerPage != nil && *query.PerPage > MaxPerPage {
			query.PerPage = models.IntPtr(MaxPerPage)
		}

		if !h.validateQuery(w, r, query) {
			return
		}

		list := h.commerceService.GetProducts(r.Context(), query)

		response.Success(w, http.StatusOK, list)
	}
}

// GetProduct godoc
//
//	@Summary	Get a product by ID
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/api/v1/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		log := logger.FromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			log.Warn("Invalid product id", slog.String("id", r.PathValue("id")))
			response.Error(w, err)
			return
		}

		product := h.commerceService.GetProduct(r.Context(), id, false)
		if product == nil {
			response.Error(w, appErrors.NotFoundError("Product not found"))
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// GetProductBySlug godoc
//
//	@Summary	Get a product by slug
//	@Tags		Products
//	@Produce	json
//	@Param		slug	path		string	true	"Product slug"
//	@Success	200		{object}	models.Product
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Router		/api/v1/product-by-slug/{slug} [get]
func (h *CatalogHandler) GetProductBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		product := h.commerceService.GetProductBySlug(r.Context(), r.PathValue("slug"), false)
		if product == nil {
			response.Error(w, appErrors.NotFoundError("Product not found"))
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// GetRelatedProducts godoc
//
//	@Summary		List related products
//	@Description	Products from the same first category, excluding the product itself.
//	@Tags			Products
//	@Produce		json
//	@Param			id		path		int	true	"Product ID"
//	@Param			limit	query		int	false	"Maximum number of products (default: 4, max: 20)"	minimum(1)	maximum(20)
//	@Success		200		{array}		models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Invalid product ID"
//	@Router			/api/v1/products/{id}/related [get]
func (h *CatalogHandler) GetRelatedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		limit := min(utils.QueryInt(r, "limit", service.DefaultRelatedLimit), MaxRelatedLimit)

		related := h.commerceService.GetRelatedProducts(r.Context(), id, limit, false)

		response.Success(w, http.StatusOK, related)
	}
}

// ListProductCategories godoc
//
//	@Summary	List product categories
//	@Tags		Products
//	@Produce	json
//	@Param		page		query		int		false	"Page number (default: 1)"
//	@Param		per_page	query		int		false	"Items per page (default: 100, max: 100)"
//	@Param		parent		query		int		false	"Parent category ID"
//	@Param		hide_empty	query		bool	false	"Hide empty categories (default: true)"
//	@Param		orderby		query		string	false	"Sort field"
//	@Param		order		query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success	200			{object}	models.CategoryList
//	@Failure	400			{object}	response.ErrorResponse	"Invalid query parameters"
//	@Router		/api/v1/product-categories [get]
func (h *CatalogHandler) ListProductCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		q := r.URL.Query()
		query := models.CategoryQuery{
			Page:      utils.QueryIntPtr(r, "page"),
			PerPage:   utils.QueryIntPtr(r, "per_page"),
			Parent:    utils.QueryInt64Ptr(r, "parent"),
			HideEmpty: utils.QueryBoolPtr(r, "hide_empty"),
			OrderBy:   q.Get("orderby"),
			Order:     q.Get("order"),
		}

		if query.PerPage != nil && *query.PerPage > MaxPerPage {
			query.PerPage = models.IntPtr(MaxPerPage)
		}

		if !h.validateQuery(w, r, query) {
			return
		}

		response.Success(w, http.StatusOK, h.commerceService.GetProductCategories(r.Context(), query))
	}
}

// Search godoc
//
//	@Summary	Search site content
//	@Tags		Content
//	@Produce	json
//	@Param		q		query		string	true	"Search term"
//	@Param		type	query		string	false	"Content subtype (default: post)"
//	@Success	200		{array}		models.SearchResult
//	@Failure	400		{object}	response.ErrorResponse	"Missing search term"
//	@Router		/api/v1/search [get]
func (h *CatalogHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		term := strings.TrimSpace(r.URL.Query().Get("q"))
		if term == "" {
			response.Error(w, appErrors.BadRequestError("Query parameter q is required"))
			return
		}

		results := h.contentService.SearchContent(r.Context(), term, r.URL.Query().Get("type"))

		response.Success(w, http.StatusOK, results)
	}
}

// GetMenu godoc
//
//	@Summary	Get navigation menu
//	@Tags		Content
//	@Produce	json
//	@Param		location	path		string	true	"Menu location"
//	@Success	200			{object}	models.Menu
//	@Router		/api/v1/menus/{location} [get]
func (h *CatalogHandler) GetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.contentService.GetMenuItems(r.Context(), r.PathValue("location")))
	}
}

// GetSettings godoc
//
//	@Summary	Get global site settings
//	@Tags		Content
//	@Produce	json
//	@Success	200	{object}	models.GlobalSettings
//	@Router		/api/v1/settings [get]
func (h *CatalogHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.contentService.GetGlobalSettings(r.Context()))
	}
}

func (h *CatalogHandler) validateQuery(w http.ResponseWriter, r *http.Request, query any) bool {
	err := h.validator.Struct(query)
	if err == nil {
		return true
	}

	logger.FromContext(r.Context()).Warn("Invalid query parameters", slog.String("error", err.Error()))

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.ValidationError(w, validationErrs)
	} else {
		response.Error(w, appErrors.BadRequestError("Invalid query parameters"))
	}

	return false
}
